package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

func TestResolveRecipeCost_BasePlusIngredients(t *testing.T) {
	ingredients := map[string]domain.Ingredient{
		"flour": {ID: "flour", UnitCost: 0.50},
	}
	bases := map[string]domain.Recipe{
		"ganache": {ID: "ganache", TotalCost: 2.00},
	}
	r := domain.Recipe{
		BaseRecipeIDs: []string{"ganache"},
		Ingredients:   []domain.RecipeItem{{IngredientID: "flour", Quantity: 3}},
	}

	total := engine.ResolveRecipeCost(r, ingredients, bases)
	assert.InDelta(t, 3.50, total, 1e-9)
	assert.InDelta(t, 0.50, engine.RecipeUnitCost(total, 7), 1e-9)
}

func TestResolveRecipeCost_MultipleBases(t *testing.T) {
	bases := map[string]domain.Recipe{
		"a": {ID: "a", TotalCost: 1.25},
		"b": {ID: "b", TotalCost: 2.75},
	}
	r := domain.Recipe{BaseRecipeIDs: []string{"a", "b"}}

	assert.InDelta(t, 4.00, engine.ResolveRecipeCost(r, nil, bases), 1e-9)
}

func TestResolveRecipeCost_DanglingRefsContributeZero(t *testing.T) {
	r := domain.Recipe{
		BaseRecipeIDs: []string{"gone"},
		Ingredients:   []domain.RecipeItem{{IngredientID: "missing", Quantity: 10}},
		Packaging:     []domain.RecipeItem{{IngredientID: "also-missing", Quantity: 2}},
	}

	assert.Zero(t, engine.ResolveRecipeCost(r, map[string]domain.Ingredient{}, map[string]domain.Recipe{}))
}

func TestResolveRecipeCost_PackagingCounted(t *testing.T) {
	ingredients := map[string]domain.Ingredient{
		"box":   {ID: "box", UnitCost: 1.20},
		"sugar": {ID: "sugar", UnitCost: 0.10},
	}
	r := domain.Recipe{
		Ingredients: []domain.RecipeItem{{IngredientID: "sugar", Quantity: 5}},
		Packaging:   []domain.RecipeItem{{IngredientID: "box", Quantity: 2}},
	}

	assert.InDelta(t, 0.5+2.4, engine.ResolveRecipeCost(r, ingredients, nil), 1e-9)
}

func TestRecipeUnitCost_ZeroYieldDefaultsToOne(t *testing.T) {
	assert.Equal(t, 8.0, engine.RecipeUnitCost(8.0, 0))
	assert.Equal(t, 8.0, engine.RecipeUnitCost(8.0, -3))
}

func TestMarginPercent(t *testing.T) {
	assert.InDelta(t, 60.0, engine.MarginPercent(10, 4), 1e-9)

	// Guard: zero whenever price or cost is not positive.
	assert.Zero(t, engine.MarginPercent(0, 4))
	assert.Zero(t, engine.MarginPercent(-5, 4))
	assert.Zero(t, engine.MarginPercent(10, 0))
	assert.Zero(t, engine.MarginPercent(10, -1))
}

func TestCogsPercent(t *testing.T) {
	assert.InDelta(t, 40.0, engine.CogsPercent(10, 4), 1e-9)
	assert.Zero(t, engine.CogsPercent(0, 4))
	assert.Zero(t, engine.CogsPercent(10, 0))
}
