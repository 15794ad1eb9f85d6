package service

import (
	"context"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

// ============================================================
// Expense categories
// ============================================================

func (s *BusinessService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListCategories")
	defer span.End()

	return s.store.ListCategories(ctx, userID)
}

func (s *BusinessService) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateCategory")
	defer span.End()

	if c.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if c.SpendingLimit != nil && *c.SpendingLimit < 0 {
		return nil, &domain.ErrValidation{Field: "spending_limit", Message: "must not be negative"}
	}

	out, err := s.store.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(c.UserID)
	return out, nil
}

func (s *BusinessService) UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateCategory")
	defer span.End()

	if c.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "required"}
	}

	out, err := s.store.UpdateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(c.UserID)
	return out, nil
}

func (s *BusinessService) DeleteCategory(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteCategory")
	defer span.End()

	if err := s.store.DeleteCategory(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}

// ============================================================
// Product categories
// ============================================================

func (s *BusinessService) ListProductCategories(ctx context.Context, userID string) ([]domain.ProductCategory, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListProductCategories")
	defer span.End()

	return s.store.ListProductCategories(ctx, userID)
}

func (s *BusinessService) CreateProductCategory(ctx context.Context, c *domain.ProductCategory) (*domain.ProductCategory, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateProductCategory")
	defer span.End()

	if c.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if c.DefaultMargin < 0 {
		return nil, &domain.ErrValidation{Field: "default_margin_percent", Message: "must not be negative"}
	}

	out, err := s.store.CreateProductCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(c.UserID)
	return out, nil
}

func (s *BusinessService) UpdateProductCategory(ctx context.Context, c *domain.ProductCategory) (*domain.ProductCategory, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateProductCategory")
	defer span.End()

	if c.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "required"}
	}

	out, err := s.store.UpdateProductCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(c.UserID)
	return out, nil
}

func (s *BusinessService) DeleteProductCategory(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteProductCategory")
	defer span.End()

	if err := s.store.DeleteProductCategory(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}

// ============================================================
// Goals
// ============================================================

func (s *BusinessService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.ListGoals")
	defer span.End()

	return s.store.ListGoals(ctx, userID)
}

func validateGoal(g *domain.Goal) error {
	if g.Name == "" {
		return &domain.ErrValidation{Field: "name", Message: "required"}
	}
	if g.Kind != domain.GoalRevenue && g.Kind != domain.GoalInvestment {
		return &domain.ErrValidation{Field: "kind", Message: "must be 'revenue' or 'investment'"}
	}
	if g.TargetAmount <= 0 {
		return &domain.ErrValidation{Field: "target_amount", Message: "must be positive"}
	}
	if g.Accumulated < 0 {
		return &domain.ErrValidation{Field: "accumulated_amount", Message: "must not be negative"}
	}
	if g.EndDate != nil && g.EndDate.Before(g.StartDate) {
		return &domain.ErrValidation{Field: "end_date", Message: "must not precede start_date"}
	}
	return nil
}

func (s *BusinessService) CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.CreateGoal")
	defer span.End()

	if err := validateGoal(g); err != nil {
		return nil, err
	}
	if g.StartDate.IsZero() {
		g.StartDate = domain.Today()
	}
	g.Active = engine.GoalPercent(*g) < 100

	out, err := s.store.CreateGoal(ctx, g)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(g.UserID)
	return out, nil
}

// UpdateGoal saves a goal, deactivating it once the accumulated amount
// reaches the target. A caller that sets Active back to true while at 100%
// keeps it active (explicit reactivation).
func (s *BusinessService) UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "BusinessService.UpdateGoal")
	defer span.End()

	if err := validateGoal(g); err != nil {
		return nil, err
	}

	if engine.GoalPercent(*g) >= 100 {
		prev, err := s.store.ListGoals(ctx, g.UserID)
		if err != nil {
			return nil, err
		}
		reactivated := false
		for _, p := range prev {
			// Was already complete and inactive; Active=true now means
			// the user flipped it back on.
			if p.ID == g.ID && !p.Active && g.Active {
				reactivated = true
			}
		}
		if !reactivated {
			g.Active = false
		}
	}

	out, err := s.store.UpdateGoal(ctx, g)
	if err != nil {
		return nil, err
	}
	s.invalidateSnapshot(g.UserID)
	return out, nil
}

func (s *BusinessService) DeleteGoal(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "BusinessService.DeleteGoal")
	defer span.End()

	if err := s.store.DeleteGoal(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSnapshot(userID)
	return nil
}
