package service

import (
	"context"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// ============================================================
// Ingredients & packaging
// ============================================================

func (s *BusinessService) ListIngredients(ctx context.Context, userID string) ([]domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListIngredients")
	defer span.End()

	return s.store.ListIngredients(ctx, userID)
}

func (s *BusinessService) GetIngredient(ctx context.Context, userID, id string) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetIngredient")
	defer span.End()

	return s.store.GetIngredient(ctx, userID, id)
}

// validateIngredient checks the fields shared by create and update.
func validateIngredient(ing *domain.Ingredient) error {
	if ing.Name == "" {
		return &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if ing.Kind != domain.KindIngredient && ing.Kind != domain.KindPackaging {
		return &domain.ErrValidation{Field: "kind", Message: "must be 'ingredient' or 'packaging'"}
	}
	if ing.PackageQty <= 0 {
		return &domain.ErrValidation{Field: "package_qty", Message: "must be positive"}
	}
	if ing.PackagePrice < 0 {
		return &domain.ErrValidation{Field: "package_price", Message: "must not be negative"}
	}
	if ing.CurrentStock < 0 {
		return &domain.ErrValidation{Field: "current_stock", Message: "must not be negative"}
	}
	if ing.MinimumStock < 0 {
		return &domain.ErrValidation{Field: "minimum_stock", Message: "must not be negative"}
	}
	return nil
}

func (s *BusinessService) CreateIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateIngredient")
	defer span.End()

	if err := validateIngredient(ing); err != nil {
		return nil, err
	}
	ing.UnitCost = ing.PackagePrice / ing.PackageQty

	out, err := s.store.CreateIngredient(ctx, ing)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ing.UserID)
	return out, nil
}

// UpdateIngredient saves an ingredient, recomputing the derived unit cost.
// Recipes using the ingredient keep their last computed cost until re-saved.
func (s *BusinessService) UpdateIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateIngredient")
	defer span.End()

	if err := validateIngredient(ing); err != nil {
		return nil, err
	}
	ing.UnitCost = ing.PackagePrice / ing.PackageQty

	out, err := s.store.UpdateIngredient(ctx, ing)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ing.UserID)
	return out, nil
}

func (s *BusinessService) DeleteIngredient(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteIngredient")
	defer span.End()

	if err := s.store.DeleteIngredient(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}
