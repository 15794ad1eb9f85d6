package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// ============================================================
// Recipes — table: recipes
// (base_recipe_ids, ingredients, packaging are jsonb columns)
// ============================================================

func (c *Client) ListRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListRecipes")
	defer span.End()

	rows := []domain.Recipe{}
	path := fmt.Sprintf("recipes?user_id=eq.%s&order=name.asc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetRecipe(ctx context.Context, userID, id string) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetRecipe")
	defer span.End()

	var rows []domain.Recipe
	path := fmt.Sprintf("recipes?user_id=eq.%s&id=eq.%s&limit=1", userID, id)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("recipe", id)
	}
	return &rows[0], nil
}

func (c *Client) CreateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateRecipe")
	defer span.End()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt

	var out domain.Recipe
	if err := c.insertRow(ctx, "recipes", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateRecipe")
	defer span.End()

	r.UpdatedAt = time.Now()

	var out domain.Recipe
	path := fmt.Sprintf("recipes?user_id=eq.%s&id=eq.%s", r.UserID, r.ID)
	if err := c.updateRow(ctx, path, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRecipe(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteRecipe")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("recipes?user_id=eq.%s&id=eq.%s", userID, id))
}

// ============================================================
// Production runs — table: production_runs
// ============================================================

func (c *Client) ListProductionRuns(ctx context.Context, userID string) ([]domain.ProductionRun, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListProductionRuns")
	defer span.End()

	rows := []domain.ProductionRun{}
	path := fmt.Sprintf("production_runs?user_id=eq.%s&order=production_date.desc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateProductionRun(ctx context.Context, run *domain.ProductionRun) (*domain.ProductionRun, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateProductionRun")
	defer span.End()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.CreatedAt = time.Now()

	var out domain.ProductionRun
	if err := c.insertRow(ctx, "production_runs", run, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProductionRun(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteProductionRun")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("production_runs?user_id=eq.%s&id=eq.%s", userID, id))
}
