package engine

import "shoplist-api/internal/models"

// The list lifecycle is a strict forward chain:
//
//	planning -> shopping -> completed
//
// No transition skips a state and none reverses one. Completed is terminal;
// the only legal mutation on a completed list is deletion.

// CanTransition reports whether a list may move from one status to another.
func CanTransition(from, to models.ListStatus) bool {
	switch from {
	case models.StatusPlanning:
		return to == models.StatusShopping
	case models.StatusShopping:
		return to == models.StatusCompleted
	default:
		return false
	}
}

// NextStatus returns the status that follows s in the chain, if any.
func NextStatus(s models.ListStatus) (models.ListStatus, bool) {
	switch s {
	case models.StatusPlanning:
		return models.StatusShopping, true
	case models.StatusShopping:
		return models.StatusCompleted, true
	default:
		return "", false
	}
}

// IsTerminal reports whether s admits no further transition.
func IsTerminal(s models.ListStatus) bool {
	return s == models.StatusCompleted
}

// CanModify reports whether list or item mutations other than delete are
// still legal for a list in status s.
func CanModify(s models.ListStatus) bool {
	return s != models.StatusCompleted
}
