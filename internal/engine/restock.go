package engine

import (
	"sort"

	"github.com/rividoceria/doceria-api/internal/domain"
)

// BuildPurchaseList returns the prioritized restock list: every item at or
// below its minimum stock, with the package count needed to get back to the
// minimum and its estimated cost. Items that need zero packages are
// excluded. The list is sorted by estimated cost, highest first — purchases
// are ordered by financial urgency, not stock-deficit size, to support
// cash-flow planning.
func BuildPurchaseList(items []domain.Ingredient) []domain.PurchaseItem {
	list := make([]domain.PurchaseItem, 0)
	for _, ing := range items {
		if ing.CurrentStock > ing.MinimumStock {
			continue
		}
		toBuy := ing.MinimumStock - ing.CurrentStock
		if toBuy <= 0 {
			continue
		}
		list = append(list, domain.PurchaseItem{
			IngredientID:  ing.ID,
			Name:          ing.Name,
			Kind:          ing.Kind,
			CurrentStock:  ing.CurrentStock,
			MinimumStock:  ing.MinimumStock,
			QuantityToBuy: toBuy,
			EstimatedCost: toBuy * ing.PackagePrice,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].EstimatedCost > list[j].EstimatedCost
	})

	return list
}
