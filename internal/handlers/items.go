package handlers

import (
	"net/http"

	"shoplist-api/internal/engine"
	"shoplist-api/internal/grocery"
	"shoplist-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItemHandler handles shopping item operations
type ItemHandler struct {
	engine *engine.Manager
}

// NewItemHandler creates a new item handler
func NewItemHandler(mgr *engine.Manager) *ItemHandler {
	return &ItemHandler{engine: mgr}
}

// CreateItem handles POST /lists/:listId/items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))

	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": err.Error()},
		})
		return
	}

	item, err := h.engine.For(userID).AddItem(listID, req)
	if err != nil {
		respondEngineError(c, err, "Failed to add item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /lists/:listId/items/:itemId
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))
	itemID, _ := uuid.Parse(c.Param("itemId"))

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid request body",
			Details: map[string]interface{}{"error": err.Error()},
		})
		return
	}

	item, err := h.engine.For(userID).UpdateItem(listID, itemID, req)
	if err != nil {
		respondEngineError(c, err, "Failed to update item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// TogglePurchased handles POST /lists/:listId/items/:itemId/toggle
func (h *ItemHandler) TogglePurchased(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))
	itemID, _ := uuid.Parse(c.Param("itemId"))

	item, err := h.engine.For(userID).TogglePurchased(listID, itemID)
	if err != nil {
		respondEngineError(c, err, "Failed to toggle item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /lists/:listId/items/:itemId
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listID, _ := uuid.Parse(c.Param("listId"))
	itemID, _ := uuid.Parse(c.Param("itemId"))

	if err := h.engine.For(userID).DeleteItem(listID, itemID); err != nil {
		respondEngineError(c, err, "Failed to delete item")
		return
	}

	c.Status(http.StatusNoContent)
}

// SuggestCategory handles GET /categorize?name=
// It returns a category suggestion for an item name; the client decides
// whether to use it.
func (h *ItemHandler) SuggestCategory(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Query parameter 'name' is required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     name,
		"category": grocery.Categorize(name),
	})
}
