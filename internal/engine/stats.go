package engine

import "shoplist-api/internal/models"

// Stats aggregates a user's lists across the whole collection.
type Stats struct {
	TotalLists          int                  `json:"totalLists"`
	ActiveLists         int                  `json:"activeLists"`
	CompletedLists      int                  `json:"completedLists"`
	TotalSavedCents     int64                `json:"totalSavedCents"`
	AverageSavingsCents int64                `json:"averageSavingsCents"`
	ActiveList          *models.ShoppingList `json:"activeList,omitempty"`
}

// Rollup computes cross-list statistics. Savings are summed over completed
// lists only; the active list is the most recently created list still in
// planning or shopping. Lists are expected newest first, matching the
// storage ordering contract.
func Rollup(lists []ListWithItems) Stats {
	var stats Stats
	stats.TotalLists = len(lists)

	for i := range lists {
		list := &lists[i]
		if IsTerminal(list.List.Status) {
			stats.CompletedLists++
			stats.TotalSavedCents += TotalsOf(list.Items).SavingsCents
			continue
		}
		stats.ActiveLists++
		if stats.ActiveList == nil {
			active := list.List
			stats.ActiveList = &active
		}
	}

	if stats.CompletedLists > 0 {
		stats.AverageSavingsCents = stats.TotalSavedCents / int64(stats.CompletedLists)
	}

	return stats
}
