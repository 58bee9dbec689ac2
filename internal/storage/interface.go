package storage

import (
	"shoplist-api/internal/models"

	"github.com/google/uuid"
)

// Store defines the persistence contract consumed by the engine.
// List reads are ordered by creation time descending; item reads are
// ordered by category ascending.
type Store interface {
	// List operations
	CreateList(userID uuid.UUID, req models.CreateListRequest) (*models.ShoppingList, error)
	GetAllLists(userID uuid.UUID) ([]models.ShoppingList, error)
	GetListByID(userID, listID uuid.UUID) (*models.ShoppingList, error)
	UpdateList(userID, listID uuid.UUID, req models.UpdateListRequest) (*models.ShoppingList, error)
	DeleteList(userID, listID uuid.UUID) error

	// Item operations
	CreateItem(userID, listID uuid.UUID, req models.CreateItemRequest) (*models.ShoppingItem, error)
	GetItemsByList(userID, listID uuid.UUID) ([]models.ShoppingItem, error)
	GetItemByID(userID, listID, itemID uuid.UUID) (*models.ShoppingItem, error)
	UpdateItem(userID, listID, itemID uuid.UUID, req models.UpdateItemRequest) (*models.ShoppingItem, error)
	DeleteItem(userID, listID, itemID uuid.UUID) error
}
