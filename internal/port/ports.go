// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// DataStore defines all persistence operations for the business dataset.
// Implemented by the Supabase adapter (or any other persistence layer).
// Every read and write is scoped to a single user's rows.
type DataStore interface {
	// Ingredients
	ListIngredients(ctx context.Context, userID string) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, userID, id string) (*domain.Ingredient, error)
	CreateIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, id string) error

	// Recipes
	ListRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, userID, id string) (*domain.Recipe, error)
	CreateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, id string) error

	// Production runs
	ListProductionRuns(ctx context.Context, userID string) ([]domain.ProductionRun, error)
	CreateProductionRun(ctx context.Context, run *domain.ProductionRun) (*domain.ProductionRun, error)
	DeleteProductionRun(ctx context.Context, userID, id string) error

	// Cash transactions
	ListTransactions(ctx context.Context, userID string) ([]domain.CashTransaction, error)
	CreateTransaction(ctx context.Context, tx *domain.CashTransaction) (*domain.CashTransaction, error)
	UpdateTransaction(ctx context.Context, tx *domain.CashTransaction) (*domain.CashTransaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error

	// Bills
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
	GetBill(ctx context.Context, userID, id string) (*domain.Bill, error)
	CreateBill(ctx context.Context, b *domain.Bill) (*domain.Bill, error)
	UpdateBill(ctx context.Context, b *domain.Bill) (*domain.Bill, error)
	DeleteBill(ctx context.Context, userID, id string) error
	ListPaidRecurringBills(ctx context.Context) ([]domain.Bill, error)

	// Categories
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, id string) error

	// Product categories
	ListProductCategories(ctx context.Context, userID string) ([]domain.ProductCategory, error)
	CreateProductCategory(ctx context.Context, c *domain.ProductCategory) (*domain.ProductCategory, error)
	UpdateProductCategory(ctx context.Context, c *domain.ProductCategory) (*domain.ProductCategory, error)
	DeleteProductCategory(ctx context.Context, userID, id string) error

	// Goals
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error

	// Settings (single row per user, upserted)
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)
	UpsertSettings(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}
