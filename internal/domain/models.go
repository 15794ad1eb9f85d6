// Package domain defines the core business entities for the Doceria API.
// These models are independent of external services and represent the
// canonical data structures used throughout the backend. Every entity row
// in Supabase carries a user_id column; the store scopes all queries by it.
package domain

import "time"

// ============================================================
// Payment methods & fee configuration
// ============================================================

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodPix    PaymentMethod = "pix"
	MethodDebit  PaymentMethod = "debit"
	MethodCredit PaymentMethod = "credit"
)

// CostEntry is a named flat monthly cost (fixed or variable) in Settings.
type CostEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Settings holds the per-user business configuration. It is loaded as part
// of the snapshot and threaded explicitly into every engine call — never
// ambient state.
type Settings struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	PixFeePercent     float64     `json:"pix_fee_percent"`
	DebitFeePercent   float64     `json:"debit_fee_percent"`
	CreditFeePercent  float64     `json:"credit_fee_percent"`
	DefaultCogsPct    float64     `json:"default_cogs_percent"`
	DefaultMarginPct  float64     `json:"default_margin_percent"`
	FixedCosts        []CostEntry `json:"fixed_costs"`
	VariableCosts     []CostEntry `json:"variable_costs"`
	EstablishmentName string      `json:"establishment_name,omitempty"`
	LogoURL           string      `json:"logo_url,omitempty"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// FeePercent returns the configured fee rate for a payment method.
// Cash is always 0%; an unknown method is treated as 0% rather than an error.
func (s Settings) FeePercent(method PaymentMethod) float64 {
	switch method {
	case MethodPix:
		return s.PixFeePercent
	case MethodDebit:
		return s.DebitFeePercent
	case MethodCredit:
		return s.CreditFeePercent
	default:
		return 0
	}
}

// ============================================================
// Inventory
// ============================================================

// IngredientKind separates raw ingredients from packaging material.
type IngredientKind string

const (
	KindIngredient IngredientKind = "ingredient"
	KindPackaging  IngredientKind = "packaging"
)

// Ingredient is a purchasable stock item. Stock and minimum stock are
// counted in whole packages; UnitCost is derived from package price and
// package quantity on every save.
type Ingredient struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Name         string         `json:"name"`
	Kind         IngredientKind `json:"kind"`
	PackageQty   float64        `json:"package_qty"`
	PackageUnit  string         `json:"package_unit"` // g, kg, ml, l, un
	PackagePrice float64        `json:"package_price"`
	UnitCost     float64        `json:"unit_cost"`     // package_price / package_qty
	CurrentStock float64        `json:"current_stock"` // packages
	MinimumStock float64        `json:"minimum_stock"` // packages
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ============================================================
// Recipes (fichas técnicas)
// ============================================================

// RecipeKind distinguishes reusable base recipes from sellable products.
type RecipeKind string

const (
	KindBaseRecipe   RecipeKind = "base_recipe"
	KindFinalProduct RecipeKind = "final_product"
)

// RecipeItem is one ingredient or packaging line in a recipe.
type RecipeItem struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// Recipe is a costed recipe sheet. Cost fields are computed when the recipe
// is saved, against the ingredient prices and base-recipe costs current at
// that moment; CostsComputedAt makes the staleness explicit. Editing a base
// recipe does not ripple into dependents until they are re-saved.
type Recipe struct {
	ID                string       `json:"id"`
	UserID            string       `json:"user_id"`
	Name              string       `json:"name"`
	Kind              RecipeKind   `json:"kind"`
	ProductCategoryID string       `json:"product_category_id,omitempty"`
	BaseRecipeIDs     []string     `json:"base_recipe_ids"`
	Ingredients       []RecipeItem `json:"ingredients"`
	Packaging         []RecipeItem `json:"packaging"`
	YieldQty          float64      `json:"yield_qty"`
	YieldUnit         string       `json:"yield_unit"`
	TotalCost         float64      `json:"total_cost"`
	UnitCost          float64      `json:"unit_cost"`
	SalePrice         float64      `json:"sale_price,omitempty"` // final products only
	MarginPercent     float64      `json:"margin_percent,omitempty"`
	CogsPercent       float64      `json:"cogs_percent,omitempty"`
	ShelfLifeDays     int          `json:"shelf_life_days,omitempty"`
	CostsComputedAt   time.Time    `json:"costs_computed_at"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// ============================================================
// Production
// ============================================================

// ProductionRun records a batch produced on a given day. TotalCost is a
// snapshot of recipe unit cost × quantity at production time and is never
// recomputed retroactively.
type ProductionRun struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	RecipeID       string    `json:"recipe_id"`
	Quantity       float64   `json:"quantity"`
	ProductionDate Date      `json:"production_date"`
	ExpiryDate     Date      `json:"expiry_date"`
	TotalCost      float64   `json:"total_cost"`
	CreatedAt      time.Time `json:"created_at"`
}

// ============================================================
// Cash ledger
// ============================================================

// TransactionKind is the direction of a cash transaction.
type TransactionKind string

const (
	KindRevenue TransactionKind = "revenue"
	KindExpense TransactionKind = "expense"
)

// CashTransaction is one daily cash movement. FeeAmount and NetAmount are
// derived from the gross amount and the user's fee settings at creation.
type CashTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Date        Date            `json:"date"`
	Kind        TransactionKind `json:"kind"`
	Description string          `json:"description"`
	GrossAmount float64         `json:"gross_amount"`
	Method      PaymentMethod   `json:"payment_method"`
	FeeAmount   float64         `json:"fee_amount"`
	NetAmount   float64         `json:"net_amount"`
	CategoryID  string          `json:"category_id,omitempty"` // expenses only
	CreatedAt   time.Time       `json:"created_at"`
}

// Bill is an account payable. PaymentDate is set when the bill is paid.
// Recurring bills are rolled forward by the scheduler once paid.
type Bill struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id,omitempty"`
	Amount      float64   `json:"amount"`
	DueDate     Date      `json:"due_date"`
	Paid        bool      `json:"paid"`
	PaymentDate *Date     `json:"payment_date,omitempty"`
	Recurring   bool      `json:"recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================================================
// Categories
// ============================================================

// Category classifies expenses and bills (account category).
type Category struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Name          string   `json:"name"`
	Fixed         bool     `json:"fixed"` // fixed vs variable cost
	SpendingLimit *float64 `json:"spending_limit,omitempty"`
	Color         string   `json:"color,omitempty"`
}

// ProductCategory groups final products and carries a default target margin.
type ProductCategory struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	DefaultMargin float64 `json:"default_margin_percent"`
	Color         string  `json:"color,omitempty"`
}

// ============================================================
// Goals
// ============================================================

// GoalKind is what a savings goal is for.
type GoalKind string

const (
	GoalRevenue    GoalKind = "revenue"
	GoalInvestment GoalKind = "investment"
)

// Goal is a revenue or investment target. Active flips to false once the
// accumulated amount reaches the target; the user may reactivate it.
type Goal struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Kind            GoalKind  `json:"kind"`
	Name            string    `json:"name"`
	TargetAmount    float64   `json:"target_amount"`
	Accumulated     float64   `json:"accumulated_amount"`
	StartDate       Date      `json:"start_date"`
	EndDate         *Date     `json:"end_date,omitempty"`
	MonthlyExpected float64   `json:"expected_monthly_contribution"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// ============================================================
// Snapshot
// ============================================================

// Snapshot is the full per-user dataset the engine derives views from.
// It is loaded wholesale, read-only, and supplied fresh per derivation call;
// the engine never mutates it.
type Snapshot struct {
	UserID            string
	Ingredients       []Ingredient
	Recipes           []Recipe
	ProductionRuns    []ProductionRun
	Transactions      []CashTransaction
	Bills             []Bill
	Categories        []Category
	ProductCategories []ProductCategory
	Goals             []Goal
	Settings          Settings
}

// RecipeByID returns the recipe with the given id, or nil.
func (s *Snapshot) RecipeByID(id string) *Recipe {
	for i := range s.Recipes {
		if s.Recipes[i].ID == id {
			return &s.Recipes[i]
		}
	}
	return nil
}

// IngredientIndex builds an id → ingredient lookup map.
func (s *Snapshot) IngredientIndex() map[string]Ingredient {
	idx := make(map[string]Ingredient, len(s.Ingredients))
	for _, ing := range s.Ingredients {
		idx[ing.ID] = ing
	}
	return idx
}

// RecipeIndex builds an id → recipe lookup map.
func (s *Snapshot) RecipeIndex() map[string]Recipe {
	idx := make(map[string]Recipe, len(s.Recipes))
	for _, r := range s.Recipes {
		idx[r.ID] = r
	}
	return idx
}
