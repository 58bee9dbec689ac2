package handlers

import (
	"net/http"

	"shoplist-api/internal/engine"
	"shoplist-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListHandler handles shopping list operations
type ListHandler struct {
	engine *engine.Manager
}

// NewListHandler creates a new list handler
func NewListHandler(mgr *engine.Manager) *ListHandler {
	return &ListHandler{engine: mgr}
}

// ListOverview is the list collection view: each list with its derived
// progress and freshly recomputed totals.
type ListOverview struct {
	List     models.ShoppingList `json:"list"`
	Progress engine.Progress     `json:"progress"`
	Totals   engine.Totals       `json:"totals"`
}

// GetAllLists handles GET /lists
func (h *ListHandler) GetAllLists(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	lists, err := h.engine.For(userID).Lists()
	if err != nil {
		respondEngineError(c, err, "Failed to retrieve lists")
		return
	}

	overviews := make([]ListOverview, 0, len(lists))
	for _, entry := range lists {
		overviews = append(overviews, ListOverview{
			List:     entry.List,
			Progress: engine.ProgressOf(entry.Items),
			Totals:   engine.TotalsOf(entry.Items),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": overviews})
}

// CreateList handles POST /lists
func (h *ListHandler) CreateList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": err.Error()},
		})
		return
	}

	list, err := h.engine.For(userID).CreateList(req)
	if err != nil {
		respondEngineError(c, err, "Failed to create list")
		return
	}

	c.JSON(http.StatusCreated, list)
}

// GetListByID handles GET /lists/:listId
func (h *ListHandler) GetListByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	entry, err := h.engine.For(userID).ListByID(listID)
	if err != nil {
		respondEngineError(c, err, "Failed to retrieve list")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetListSummary handles GET /lists/:listId/summary
func (h *ListHandler) GetListSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	summary, err := h.engine.For(userID).Summary(listID)
	if err != nil {
		respondEngineError(c, err, "Failed to compute list summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateList handles PUT /lists/:listId
func (h *ListHandler) UpdateList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	var req models.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": err.Error()},
		})
		return
	}

	list, err := h.engine.For(userID).UpdateList(listID, req)
	if err != nil {
		respondEngineError(c, err, "Failed to update list")
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteList handles DELETE /lists/:listId
func (h *ListHandler) DeleteList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	if err := h.engine.For(userID).DeleteList(listID); err != nil {
		respondEngineError(c, err, "Failed to delete list")
		return
	}

	c.Status(http.StatusNoContent)
}

// StartShopping handles POST /lists/:listId/start
func (h *ListHandler) StartShopping(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	list, err := h.engine.For(userID).StartShopping(listID)
	if err != nil {
		respondEngineError(c, err, "Failed to start shopping")
		return
	}

	c.JSON(http.StatusOK, list)
}

// FinishShopping handles POST /lists/:listId/finish
func (h *ListHandler) FinishShopping(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	list, err := h.engine.For(userID).FinishShopping(listID)
	if err != nil {
		respondEngineError(c, err, "Failed to finish shopping")
		return
	}

	c.JSON(http.StatusOK, list)
}
