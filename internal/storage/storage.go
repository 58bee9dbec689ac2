package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"shoplist-api/internal/models"

	"github.com/google/uuid"
)

var (
	ErrListNotFound = errors.New("shopping list not found")
	ErrItemNotFound = errors.New("shopping item not found")
)

// Storage provides in-memory storage for shopping lists and items
type Storage struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]*models.ShoppingList // maps list ID to list
	items map[uuid.UUID]*models.ShoppingItem // maps item ID to item
}

// NewStorage creates a new in-memory storage instance
func NewStorage() *Storage {
	return &Storage{
		lists: make(map[uuid.UUID]*models.ShoppingList),
		items: make(map[uuid.UUID]*models.ShoppingItem),
	}
}

// CreateList creates a new shopping list for a specific user
func (s *Storage) CreateList(userID uuid.UUID, req models.CreateListRequest) (*models.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	list := &models.ShoppingList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Status:    models.StatusPlanning,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.lists[list.ID] = list
	listCopy := *list
	return &listCopy, nil
}

// GetAllLists retrieves all lists for a user, newest first
func (s *Storage) GetAllLists(userID uuid.UUID) ([]models.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := make([]models.ShoppingList, 0)
	for _, list := range s.lists {
		if list.UserID == userID {
			lists = append(lists, *list)
		}
	}

	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})

	return lists, nil
}

// GetListByID retrieves a shopping list by ID for a specific user
func (s *Storage) GetListByID(userID, listID uuid.UUID) (*models.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return nil, ErrListNotFound
	}

	listCopy := *list
	return &listCopy, nil
}

// UpdateList applies a partial update to an existing list
func (s *Storage) UpdateList(userID, listID uuid.UUID, req models.UpdateListRequest) (*models.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return nil, ErrListNotFound
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Status != nil {
		list.Status = *req.Status
	}
	if req.CompletedAt != nil {
		completedAt := *req.CompletedAt
		list.CompletedAt = &completedAt
	}
	if req.EstimatedTotalCents != nil {
		list.EstimatedTotalCents = *req.EstimatedTotalCents
	}
	if req.ActualTotalCents != nil {
		list.ActualTotalCents = *req.ActualTotalCents
	}

	list.UpdatedAt = time.Now()

	listCopy := *list
	return &listCopy, nil
}

// DeleteList deletes a shopping list and all its items for a specific user
func (s *Storage) DeleteList(userID, listID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return ErrListNotFound
	}

	for itemID, item := range s.items {
		if item.ListID == listID {
			delete(s.items, itemID)
		}
	}

	delete(s.lists, listID)
	return nil
}

// CreateItem creates a new item in a list owned by a specific user.
// Omitted optional fields take the documented defaults.
func (s *Storage) CreateItem(userID, listID uuid.UUID, req models.CreateItemRequest) (*models.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return nil, ErrListNotFound
	}

	now := time.Now()
	item := &models.ShoppingItem{
		ID:                  uuid.New(),
		ListID:              listID,
		Name:                req.Name,
		Category:            categoryOrDefault(req.Category),
		Quantity:            quantityOrDefault(req.Quantity),
		Unit:                unitOrDefault(req.Unit),
		EstimatedPriceCents: priceOrDefault(req.EstimatedPriceCents),
		IsPurchased:         false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	s.items[item.ID] = item
	itemCopy := *item
	return &itemCopy, nil
}

// GetItemsByList retrieves all items in a list, ordered by category
func (s *Storage) GetItemsByList(userID, listID uuid.UUID) ([]models.ShoppingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return nil, ErrListNotFound
	}

	items := make([]models.ShoppingItem, 0)
	for _, item := range s.items {
		if item.ListID == listID {
			items = append(items, *item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

// GetItemByID retrieves a specific item from a list owned by a specific user
func (s *Storage) GetItemByID(userID, listID, itemID uuid.UUID) (*models.ShoppingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return nil, ErrListNotFound
	}

	item, exists := s.items[itemID]
	if !exists || item.ListID != listID {
		return nil, ErrItemNotFound
	}

	itemCopy := *item
	return &itemCopy, nil
}

// UpdateItem applies a partial update to an existing item
func (s *Storage) UpdateItem(userID, listID, itemID uuid.UUID, req models.UpdateItemRequest) (*models.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return nil, ErrListNotFound
	}

	item, exists := s.items[itemID]
	if !exists || item.ListID != listID {
		return nil, ErrItemNotFound
	}

	applyItemUpdate(item, req)
	item.UpdatedAt = time.Now()

	itemCopy := *item
	return &itemCopy, nil
}

// DeleteItem deletes an item from a list owned by a specific user
func (s *Storage) DeleteItem(userID, listID, itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, exists := s.lists[listID]
	if !exists || list.UserID != userID {
		return ErrListNotFound
	}

	item, exists := s.items[itemID]
	if !exists || item.ListID != listID {
		return ErrItemNotFound
	}

	delete(s.items, itemID)
	return nil
}

// applyItemUpdate copies the supplied fields of req onto item.
// Clearing a recorded actual price happens when the purchased flag is
// explicitly set to false.
func applyItemUpdate(item *models.ShoppingItem, req models.UpdateItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.EstimatedPriceCents != nil {
		item.EstimatedPriceCents = *req.EstimatedPriceCents
	}
	if req.ActualPriceCents != nil {
		price := *req.ActualPriceCents
		item.ActualPriceCents = &price
	}
	if req.IsPurchased != nil {
		item.IsPurchased = *req.IsPurchased
		if !item.IsPurchased {
			item.ActualPriceCents = nil
		}
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
}

// Default values for omitted item fields

func categoryOrDefault(c *models.Category) models.Category {
	if c == nil {
		return models.CategoryOther
	}
	return *c
}

func quantityOrDefault(q *float64) float64 {
	if q == nil {
		return 1
	}
	return *q
}

func unitOrDefault(u *models.Unit) models.Unit {
	if u == nil {
		return models.UnitEach
	}
	return *u
}

func priceOrDefault(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
