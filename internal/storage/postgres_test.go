package storage

import (
	"testing"

	"shoplist-api/internal/models"
	"shoplist-api/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresStorage(t *testing.T) *PostgresStorage {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	return NewPostgresStorage(db)
}

func TestPostgresStorageLists(t *testing.T) {
	userID := uuid.New()

	t.Run("create and fetch roundtrip", func(t *testing.T) {
		s := setupPostgresStorage(t)

		created, err := s.CreateList(userID, models.CreateListRequest{Name: "Groceries"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, models.StatusPlanning, created.Status)

		fetched, err := s.GetListByID(userID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "Groceries", fetched.Name)
	})

	t.Run("lists are scoped by user", func(t *testing.T) {
		s := setupPostgresStorage(t)
		otherUser := uuid.New()

		list, err := s.CreateList(userID, models.CreateListRequest{Name: "Mine"})
		require.NoError(t, err)

		_, err = s.GetListByID(otherUser, list.ID)
		assert.ErrorIs(t, err, ErrListNotFound)

		lists, err := s.GetAllLists(otherUser)
		require.NoError(t, err)
		assert.Empty(t, lists)
	})

	t.Run("update writes lifecycle and totals fields", func(t *testing.T) {
		s := setupPostgresStorage(t)

		list, err := s.CreateList(userID, models.CreateListRequest{Name: "Groceries"})
		require.NoError(t, err)

		status := models.StatusShopping
		estimated := int64(1700)
		actual := int64(1250)
		updated, err := s.UpdateList(userID, list.ID, models.UpdateListRequest{
			Status:              &status,
			EstimatedTotalCents: &estimated,
			ActualTotalCents:    &actual,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusShopping, updated.Status)
		assert.Equal(t, int64(1700), updated.EstimatedTotalCents)
		assert.Equal(t, int64(1250), updated.ActualTotalCents)

		fetched, err := s.GetListByID(userID, list.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusShopping, fetched.Status)
	})

	t.Run("delete cascades to items", func(t *testing.T) {
		s := setupPostgresStorage(t)

		list, err := s.CreateList(userID, models.CreateListRequest{Name: "Groceries"})
		require.NoError(t, err)
		_, err = s.CreateItem(userID, list.ID, models.CreateItemRequest{Name: "Milk"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteList(userID, list.ID))

		_, err = s.GetListByID(userID, list.ID)
		assert.ErrorIs(t, err, ErrListNotFound)
	})

	t.Run("delete unknown list returns not found", func(t *testing.T) {
		s := setupPostgresStorage(t)
		assert.ErrorIs(t, s.DeleteList(userID, uuid.New()), ErrListNotFound)
	})
}

func TestPostgresStorageItems(t *testing.T) {
	userID := uuid.New()

	newList := func(t *testing.T, s *PostgresStorage) uuid.UUID {
		list, err := s.CreateList(userID, models.CreateListRequest{Name: "Groceries"})
		require.NoError(t, err)
		return list.ID
	}

	t.Run("create applies defaults", func(t *testing.T) {
		s := setupPostgresStorage(t)
		listID := newList(t, s)

		item, err := s.CreateItem(userID, listID, models.CreateItemRequest{Name: "Milk"})
		require.NoError(t, err)

		assert.Equal(t, models.CategoryOther, item.Category)
		assert.Equal(t, float64(1), item.Quantity)
		assert.Equal(t, models.UnitEach, item.Unit)
		assert.Equal(t, int64(0), item.EstimatedPriceCents)
		assert.False(t, item.IsPurchased)
	})

	t.Run("items come back ordered by category", func(t *testing.T) {
		s := setupPostgresStorage(t)
		listID := newList(t, s)

		_, err := s.CreateItem(userID, listID, models.CreateItemRequest{
			Name: "Apples", Category: testutil.CategoryPtr(models.CategoryFruits),
		})
		require.NoError(t, err)
		_, err = s.CreateItem(userID, listID, models.CreateItemRequest{
			Name: "Milk", Category: testutil.CategoryPtr(models.CategoryDairy),
		})
		require.NoError(t, err)

		items, err := s.GetItemsByList(userID, listID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Milk", items[0].Name)
		assert.Equal(t, "Apples", items[1].Name)
	})

	t.Run("clearing the actual price persists a NULL", func(t *testing.T) {
		s := setupPostgresStorage(t)
		listID := newList(t, s)

		item, err := s.CreateItem(userID, listID, models.CreateItemRequest{Name: "Milk"})
		require.NoError(t, err)

		_, err = s.UpdateItem(userID, listID, item.ID, models.UpdateItemRequest{
			IsPurchased:      testutil.BoolPtr(true),
			ActualPriceCents: testutil.Int64Ptr(450),
		})
		require.NoError(t, err)

		_, err = s.UpdateItem(userID, listID, item.ID, models.UpdateItemRequest{
			IsPurchased: testutil.BoolPtr(false),
		})
		require.NoError(t, err)

		fetched, err := s.GetItemByID(userID, listID, item.ID)
		require.NoError(t, err)
		assert.False(t, fetched.IsPurchased)
		assert.Nil(t, fetched.ActualPriceCents)
	})

	t.Run("delete removes item", func(t *testing.T) {
		s := setupPostgresStorage(t)
		listID := newList(t, s)

		item, err := s.CreateItem(userID, listID, models.CreateItemRequest{Name: "Milk"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteItem(userID, listID, item.ID))
		_, err = s.GetItemByID(userID, listID, item.ID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("unknown item returns not found", func(t *testing.T) {
		s := setupPostgresStorage(t)
		listID := newList(t, s)

		_, err := s.GetItemByID(userID, listID, uuid.New())
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.ErrorIs(t, s.DeleteItem(userID, listID, uuid.New()), ErrItemNotFound)
	})
}
