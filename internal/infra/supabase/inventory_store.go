package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// ============================================================
// Ingredients — table: ingredients
// ============================================================

func (c *Client) ListIngredients(ctx context.Context, userID string) ([]domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "Supabase.ListIngredients")
	defer span.End()

	rows := []domain.Ingredient{}
	path := fmt.Sprintf("ingredients?user_id=eq.%s&order=name.asc", userID)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetIngredient(ctx context.Context, userID, id string) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "Supabase.GetIngredient")
	defer span.End()

	var rows []domain.Ingredient
	path := fmt.Sprintf("ingredients?user_id=eq.%s&id=eq.%s&limit=1", userID, id)
	if err := c.listRows(ctx, path, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("ingredient", id)
	}
	return &rows[0], nil
}

func (c *Client) CreateIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "Supabase.CreateIngredient")
	defer span.End()

	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	ing.CreatedAt = time.Now()
	ing.UpdatedAt = ing.CreatedAt

	var out domain.Ingredient
	if err := c.insertRow(ctx, "ingredients", ing, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "Supabase.UpdateIngredient")
	defer span.End()

	ing.UpdatedAt = time.Now()

	var out domain.Ingredient
	path := fmt.Sprintf("ingredients?user_id=eq.%s&id=eq.%s", ing.UserID, ing.ID)
	if err := c.updateRow(ctx, path, ing, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteIngredient(ctx context.Context, userID, id string) error {
	ctx, span := tracer.Start(ctx, "Supabase.DeleteIngredient")
	defer span.End()

	return c.deleteRow(ctx, fmt.Sprintf("ingredients?user_id=eq.%s&id=eq.%s", userID, id))
}
