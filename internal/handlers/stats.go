package handlers

import (
	"net/http"

	"shoplist-api/internal/engine"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the cross-list statistics rollup
type StatsHandler struct {
	engine *engine.Manager
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(mgr *engine.Manager) *StatsHandler {
	return &StatsHandler{engine: mgr}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.engine.For(userID).Stats()
	if err != nil {
		respondEngineError(c, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Refresh handles POST /refresh, forcing a full reload of the user's
// snapshot from storage.
func (h *StatsHandler) Refresh(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.engine.For(userID).Refetch(); err != nil {
		respondEngineError(c, err, "Failed to refresh")
		return
	}

	c.Status(http.StatusNoContent)
}
