package engine

import "github.com/rividoceria/doceria-api/internal/domain"

// ResolveRecipeCost computes a recipe's total cost from its base-recipe
// references, ingredient lines, and packaging lines.
//
// Base recipes contribute their already-computed TotalCost — a single hop,
// not a recursive walk. Base recipes are saved with their costs resolved,
// so a dependent reads that saved figure; editing a base recipe does not
// ripple into dependents until they are re-saved. A dangling ingredient or
// base-recipe reference contributes zero rather than failing: a slightly
// wrong report beats no report.
func ResolveRecipeCost(r domain.Recipe, ingredients map[string]domain.Ingredient, bases map[string]domain.Recipe) float64 {
	var total float64

	for _, baseID := range r.BaseRecipeIDs {
		if base, ok := bases[baseID]; ok {
			total += base.TotalCost
		}
	}
	for _, item := range r.Ingredients {
		if ing, ok := ingredients[item.IngredientID]; ok {
			total += item.Quantity * ing.UnitCost
		}
	}
	for _, item := range r.Packaging {
		if ing, ok := ingredients[item.IngredientID]; ok {
			total += item.Quantity * ing.UnitCost
		}
	}

	return total
}

// RecipeUnitCost divides a total cost by the declared yield.
// A missing or zero yield is treated as 1.
func RecipeUnitCost(totalCost, yieldQty float64) float64 {
	if yieldQty <= 0 {
		yieldQty = 1
	}
	return totalCost / yieldQty
}

// MarginPercent is the profit margin of a sale price over a unit cost,
// as a percentage of the sale price. Zero when either input is not positive.
func MarginPercent(salePrice, unitCost float64) float64 {
	if salePrice <= 0 || unitCost <= 0 {
		return 0
	}
	return (salePrice - unitCost) / salePrice * 100
}

// CogsPercent is the unit cost as a percentage of the sale price.
// Zero under the same guard as MarginPercent.
func CogsPercent(salePrice, unitCost float64) float64 {
	if salePrice <= 0 || unitCost <= 0 {
		return 0
	}
	return unitCost / salePrice * 100
}
