package engine

import (
	"testing"

	"shoplist-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.ListStatus
		to      models.ListStatus
		allowed bool
	}{
		{"planning to shopping", models.StatusPlanning, models.StatusShopping, true},
		{"shopping to completed", models.StatusShopping, models.StatusCompleted, true},
		{"planning cannot skip to completed", models.StatusPlanning, models.StatusCompleted, false},
		{"shopping cannot revert to planning", models.StatusShopping, models.StatusPlanning, false},
		{"completed is terminal", models.StatusCompleted, models.StatusPlanning, false},
		{"completed cannot re-enter shopping", models.StatusCompleted, models.StatusShopping, false},
		{"no self transition", models.StatusPlanning, models.StatusPlanning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestNextStatus(t *testing.T) {
	t.Run("planning advances to shopping", func(t *testing.T) {
		next, ok := NextStatus(models.StatusPlanning)
		assert.True(t, ok)
		assert.Equal(t, models.StatusShopping, next)
	})

	t.Run("shopping advances to completed", func(t *testing.T) {
		next, ok := NextStatus(models.StatusShopping)
		assert.True(t, ok)
		assert.Equal(t, models.StatusCompleted, next)
	})

	t.Run("completed has no successor", func(t *testing.T) {
		_, ok := NextStatus(models.StatusCompleted)
		assert.False(t, ok)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusPlanning))
	assert.False(t, IsTerminal(models.StatusShopping))
	assert.True(t, IsTerminal(models.StatusCompleted))
}

func TestCanModify(t *testing.T) {
	assert.True(t, CanModify(models.StatusPlanning))
	assert.True(t, CanModify(models.StatusShopping))
	assert.False(t, CanModify(models.StatusCompleted))
}
