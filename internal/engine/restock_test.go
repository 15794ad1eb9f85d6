package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/engine"
)

func TestBuildPurchaseList_QuantityAndCost(t *testing.T) {
	items := []domain.Ingredient{
		{ID: "flour", Name: "Flour", CurrentStock: 2, MinimumStock: 5, PackagePrice: 10},
	}

	list := engine.BuildPurchaseList(items)
	require.Len(t, list, 1)
	assert.Equal(t, 3.0, list[0].QuantityToBuy)
	assert.Equal(t, 30.0, list[0].EstimatedCost)
}

func TestBuildPurchaseList_ExactMinimumExcluded(t *testing.T) {
	items := []domain.Ingredient{
		{ID: "sugar", CurrentStock: 5, MinimumStock: 5, PackagePrice: 8},
	}

	// At minimum, nothing to buy: the item is low stock but the purchase
	// quantity resolves to zero and is dropped from the list.
	assert.Empty(t, engine.BuildPurchaseList(items))
}

func TestBuildPurchaseList_SortedByEstimatedCostDesc(t *testing.T) {
	items := []domain.Ingredient{
		{ID: "cheap", CurrentStock: 0, MinimumStock: 4, PackagePrice: 1},   // 4.00
		{ID: "pricey", CurrentStock: 1, MinimumStock: 2, PackagePrice: 50}, // 50.00
		{ID: "mid", CurrentStock: 0, MinimumStock: 2, PackagePrice: 6},     // 12.00
	}

	list := engine.BuildPurchaseList(items)
	require.Len(t, list, 3)
	assert.Equal(t, "pricey", list[0].IngredientID)
	assert.Equal(t, "mid", list[1].IngredientID)
	assert.Equal(t, "cheap", list[2].IngredientID)
}

func TestBuildPurchaseList_WellStockedExcluded(t *testing.T) {
	items := []domain.Ingredient{
		{ID: "chocolate", CurrentStock: 10, MinimumStock: 3, PackagePrice: 25},
	}
	assert.Empty(t, engine.BuildPurchaseList(items))
}
