package storage

import (
	"errors"

	"shoplist-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostgresStorage implements storage using PostgreSQL with GORM
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage creates a new PostgreSQL storage instance
func NewPostgresStorage(db *gorm.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// CreateList creates a new shopping list
func (s *PostgresStorage) CreateList(userID uuid.UUID, req models.CreateListRequest) (*models.ShoppingList, error) {
	list := &models.ShoppingList{
		UserID: userID,
		Name:   req.Name,
		Status: models.StatusPlanning,
	}

	if err := s.db.Create(list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

// GetAllLists retrieves all lists for a user, newest first
func (s *PostgresStorage) GetAllLists(userID uuid.UUID) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// GetListByID retrieves a shopping list by ID
func (s *PostgresStorage) GetListByID(userID, listID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

// UpdateList applies a partial update to an existing list
func (s *PostgresStorage) UpdateList(userID, listID uuid.UUID, req models.UpdateListRequest) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
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

	if err := s.db.Save(&list).Error; err != nil {
		return nil, err
	}

	return &list, nil
}

// DeleteList deletes a shopping list and all its items
func (s *PostgresStorage) DeleteList(userID, listID uuid.UUID) error {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}

	// Cascade: items first, then the list
	if err := s.db.Where("list_id = ?", listID).Delete(&models.ShoppingItem{}).Error; err != nil {
		return err
	}

	result := s.db.Delete(&models.ShoppingList{}, "id = ?", listID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}

// CreateItem creates a new item in a list owned by a specific user
func (s *PostgresStorage) CreateItem(userID, listID uuid.UUID, req models.CreateItemRequest) (*models.ShoppingItem, error) {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	item := &models.ShoppingItem{
		ListID:              listID,
		Name:                req.Name,
		Category:            categoryOrDefault(req.Category),
		Quantity:            quantityOrDefault(req.Quantity),
		Unit:                unitOrDefault(req.Unit),
		EstimatedPriceCents: priceOrDefault(req.EstimatedPriceCents),
		IsPurchased:         false,
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

// GetItemsByList retrieves all items in a list, ordered by category
func (s *PostgresStorage) GetItemsByList(userID, listID uuid.UUID) ([]models.ShoppingItem, error) {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	var items []models.ShoppingItem
	if err := s.db.Where("list_id = ?", listID).
		Order("category ASC, created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// GetItemByID retrieves a specific item
func (s *PostgresStorage) GetItemByID(userID, listID, itemID uuid.UUID) (*models.ShoppingItem, error) {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	var item models.ShoppingItem
	if err := s.db.Where("id = ? AND list_id = ?", itemID, listID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

// UpdateItem applies a partial update to an existing item
func (s *PostgresStorage) UpdateItem(userID, listID, itemID uuid.UUID, req models.UpdateItemRequest) (*models.ShoppingItem, error) {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	var item models.ShoppingItem
	if err := s.db.Where("id = ? AND list_id = ?", itemID, listID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	applyItemUpdate(&item, req)

	// Save skips nil pointer columns, so clearing the actual price needs an
	// explicit column write.
	updates := map[string]interface{}{
		"name":                  item.Name,
		"category":              item.Category,
		"quantity":              item.Quantity,
		"unit":                  item.Unit,
		"estimated_price_cents": item.EstimatedPriceCents,
		"actual_price_cents":    item.ActualPriceCents,
		"is_purchased":          item.IsPurchased,
		"notes":                 item.Notes,
	}
	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// DeleteItem deletes an item
func (s *PostgresStorage) DeleteItem(userID, listID, itemID uuid.UUID) error {
	var list models.ShoppingList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}

	result := s.db.Where("id = ? AND list_id = ?", itemID, listID).Delete(&models.ShoppingItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
