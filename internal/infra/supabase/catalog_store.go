package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// ============================================================
// Expense categories — table: categories
// ============================================================

func (c *Client) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListCategories")
	defer span.End()

	rows := []domain.Category{}
	path := fmt.Sprintf("categories?user_id=eq.%s&order=name.asc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateCategory")
	defer span.End()

	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}

	var out domain.Category
	if err := c.insertRow(ctx, "categories", cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateCategory")
	defer span.End()

	var out domain.Category
	path := fmt.Sprintf("categories?user_id=eq.%s&id=eq.%s", cat.UserID, cat.ID)
	if err := c.updateRow(ctx, path, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteCategory")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("categories?user_id=eq.%s&id=eq.%s", userID, id))
}

// ============================================================
// Product categories — table: product_categories
// ============================================================

func (c *Client) ListProductCategories(ctx context.Context, userID string) ([]domain.ProductCategory, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListProductCategories")
	defer span.End()

	rows := []domain.ProductCategory{}
	path := fmt.Sprintf("product_categories?user_id=eq.%s&order=name.asc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateProductCategory(ctx context.Context, cat *domain.ProductCategory) (*domain.ProductCategory, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateProductCategory")
	defer span.End()

	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}

	var out domain.ProductCategory
	if err := c.insertRow(ctx, "product_categories", cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProductCategory(ctx context.Context, cat *domain.ProductCategory) (*domain.ProductCategory, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateProductCategory")
	defer span.End()

	var out domain.ProductCategory
	path := fmt.Sprintf("product_categories?user_id=eq.%s&id=eq.%s", cat.UserID, cat.ID)
	if err := c.updateRow(ctx, path, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProductCategory(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteProductCategory")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("product_categories?user_id=eq.%s&id=eq.%s", userID, id))
}

// ============================================================
// Goals — table: goals
// ============================================================

func (c *Client) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListGoals")
	defer span.End()

	rows := []domain.Goal{}
	path := fmt.Sprintf("goals?user_id=eq.%s&order=created_at.asc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateGoal")
	defer span.End()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now()

	var out domain.Goal
	if err := c.insertRow(ctx, "goals", g, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateGoal")
	defer span.End()

	var out domain.Goal
	path := fmt.Sprintf("goals?user_id=eq.%s&id=eq.%s", g.UserID, g.ID)
	if err := c.updateRow(ctx, path, g, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGoal(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteGoal")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("goals?user_id=eq.%s&id=eq.%s", userID, id))
}
