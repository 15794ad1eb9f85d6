package service

import (
	"context"
	"time"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

// ============================================================
// Recipes (fichas técnicas)
// ============================================================

func (s *BusinessService) ListRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListRecipes")
	defer span.End()

	return s.store.ListRecipes(ctx, userID)
}

func (s *BusinessService) GetRecipe(ctx context.Context, userID, id string) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.GetRecipe")
	defer span.End()

	return s.store.GetRecipe(ctx, userID, id)
}

func validateRecipe(r *domain.Recipe) error {
	if r.Name == "" {
		return &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if r.Kind != domain.KindBaseRecipe && r.Kind != domain.KindFinalProduct {
		return &domain.ErrValidation{Field: "kind", Message: "must be 'base_recipe' or 'final_product'"}
	}
	if r.YieldQty < 0 {
		return &domain.ErrValidation{Field: "yield_qty", Message: "must not be negative"}
	}
	if r.SalePrice < 0 {
		return &domain.ErrValidation{Field: "sale_price", Message: "must not be negative"}
	}
	for _, id := range r.BaseRecipeIDs {
		if id == r.ID && r.ID != "" {
			return &domain.ErrValidation{Field: "base_recipe_ids", Message: "recipe cannot reference itself"}
		}
	}
	return nil
}

// computeRecipeCosts resolves the recipe's cost fields against the current
// ingredient prices and base-recipe costs. Costs are a snapshot at save
// time; they do not ripple when an ingredient or base later changes.
func (s *BusinessService) computeRecipeCosts(ctx context.Context, r *domain.Recipe) error {
	snap, err := s.LoadSnapshot(ctx, r.UserID)
	if err != nil {
		return err
	}

	bases := make(map[string]domain.Recipe)
	for _, base := range snap.Recipes {
		if base.Kind == domain.KindBaseRecipe {
			bases[base.ID] = base
		}
	}

	r.TotalCost = engine.ResolveRecipeCost(*r, snap.IngredientIndex(), bases)
	r.UnitCost = engine.RecipeUnitCost(r.TotalCost, r.YieldQty)
	if r.Kind == domain.KindFinalProduct {
		r.MarginPercent = engine.MarginPercent(r.SalePrice, r.UnitCost)
		r.CogsPercent = engine.CogsPercent(r.SalePrice, r.UnitCost)
	}
	r.CostsComputedAt = time.Now()
	return nil
}

func (s *BusinessService) CreateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateRecipe")
	defer span.End()

	if err := validateRecipe(r); err != nil {
		return nil, err
	}
	if err := s.computeRecipeCosts(ctx, r); err != nil {
		return nil, err
	}

	out, err := s.store.CreateRecipe(ctx, r)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(r.UserID)
	return out, nil
}

func (s *BusinessService) UpdateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateRecipe")
	defer span.End()

	if err := validateRecipe(r); err != nil {
		return nil, err
	}
	if err := s.computeRecipeCosts(ctx, r); err != nil {
		return nil, err
	}

	out, err := s.store.UpdateRecipe(ctx, r)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(r.UserID)
	return out, nil
}

func (s *BusinessService) DeleteRecipe(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteRecipe")
	defer span.End()

	if err := s.store.DeleteRecipe(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}

// ============================================================
// Production runs
// ============================================================

func (s *BusinessService) ListProductionRuns(ctx context.Context, userID string) ([]domain.ProductionRun, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListProductionRuns")
	defer span.End()

	return s.store.ListProductionRuns(ctx, userID)
}

// CreateProductionRun records a batch. The run's total cost is snapshotted
// from the recipe's current unit cost, and the expiry date is derived from
// the recipe's shelf life when one is configured.
func (s *BusinessService) CreateProductionRun(ctx context.Context, run *domain.ProductionRun) (*domain.ProductionRun, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateProductionRun")
	defer span.End()

	if run.Quantity <= 0 {
		return nil, &domain.ErrValidation{Field: "quantity", Message: "must be positive"}
	}
	if run.ProductionDate.IsZero() {
		run.ProductionDate = domain.Today()
	}

	recipe, err := s.store.GetRecipe(ctx, run.UserID, run.RecipeID)
	if err != nil {
		return nil, err
	}
	run.TotalCost = recipe.UnitCost * run.Quantity
	if run.ExpiryDate.IsZero() && recipe.ShelfLifeDays > 0 {
		run.ExpiryDate = run.ProductionDate.AddDays(recipe.ShelfLifeDays)
	}

	out, err := s.store.CreateProductionRun(ctx, run)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(run.UserID)
	return out, nil
}

func (s *BusinessService) DeleteProductionRun(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteProductionRun")
	defer span.End()

	if err := s.store.DeleteProductionRun(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}
