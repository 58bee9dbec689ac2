package engine

import "shoplist-api/internal/models"

// CategoryGroup holds the items of one category with their subtotals.
type CategoryGroup struct {
	Category       models.Category       `json:"category"`
	Items          []models.ShoppingItem `json:"items"`
	EstimatedCents int64                 `json:"estimatedCents"`
	ActualCents    int64                 `json:"actualCents"`
}

// GroupByCategory partitions items by category, preserving the relative
// input order within each bucket. Groups appear in first-occurrence order
// and categories with no items are omitted.
func GroupByCategory(items []models.ShoppingItem) []CategoryGroup {
	index := make(map[models.Category]int)
	groups := make([]CategoryGroup, 0)

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].EstimatedCents += item.EstimatedPriceCents
		if item.IsPurchased && item.ActualPriceCents != nil {
			groups[i].ActualCents += *item.ActualPriceCents
		}
	}

	return groups
}

// Progress describes how far along a list's purchases are.
type Progress struct {
	PurchasedCount  int     `json:"purchasedCount"`
	TotalItems      int     `json:"totalItems"`
	ProgressPercent float64 `json:"progressPercent"`
	AllPurchased    bool    `json:"allPurchased"`
}

// ProgressOf computes the purchase progress of a list's items. An empty
// list has zero percent progress and AllPurchased false.
func ProgressOf(items []models.ShoppingItem) Progress {
	p := Progress{TotalItems: len(items)}
	for _, item := range items {
		if item.IsPurchased {
			p.PurchasedCount++
		}
	}
	if p.TotalItems > 0 {
		p.ProgressPercent = float64(p.PurchasedCount) / float64(p.TotalItems) * 100
		p.AllPurchased = p.PurchasedCount == p.TotalItems
	}
	return p
}

// Totals holds a list's money aggregates in integer cents.
type Totals struct {
	EstimatedCents int64 `json:"estimatedCents"`
	ActualCents    int64 `json:"actualCents"`
	SavingsCents   int64 `json:"savingsCents"`
}

// TotalsOf recomputes a list's totals from its items, independent of any
// cached fields on the list record. A purchased item without a recorded
// actual price contributes zero to the actual total. Savings is positive
// when under budget and only meaningful for completed lists.
func TotalsOf(items []models.ShoppingItem) Totals {
	var t Totals
	for _, item := range items {
		t.EstimatedCents += item.EstimatedPriceCents
		if item.IsPurchased && item.ActualPriceCents != nil {
			t.ActualCents += *item.ActualPriceCents
		}
	}
	t.SavingsCents = t.EstimatedCents - t.ActualCents
	return t
}
