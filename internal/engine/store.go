package engine

import (
	"strings"
	"sync"
	"time"

	"shoplist-api/internal/logging"
	"shoplist-api/internal/models"
	"shoplist-api/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ListWithItems pairs a list with its items as loaded in one snapshot.
type ListWithItems struct {
	List  models.ShoppingList   `json:"list"`
	Items []models.ShoppingItem `json:"items"`
}

// ListSummary is the derived read view of a single list.
type ListSummary struct {
	List     models.ShoppingList `json:"list"`
	Groups   []CategoryGroup     `json:"groups"`
	Progress Progress            `json:"progress"`
	Totals   Totals              `json:"totals"`
}

// Store orchestrates all mutations of a single user's shopping lists.
//
// It holds an in-memory snapshot of the user's lists with their items.
// Every command validates its preconditions, issues one persistence request
// to the storage collaborator and, on success, reloads the entire
// collection. The snapshot is replaced wholesale (copy-and-swap), never
// patched in place, so readers observe either the pre- or post-command
// state. On failure the snapshot is left at its last-known-good state.
type Store struct {
	userID  uuid.UUID
	storage storage.Store

	mu     sync.RWMutex
	lists  []ListWithItems
	loaded bool
}

// NewStore creates a store bound to an explicit user identifier. A nil
// user ID yields a store with a permanently empty, non-loading snapshot.
func NewStore(userID uuid.UUID, st storage.Store) *Store {
	return &Store{userID: userID, storage: st}
}

// Refetch forces a full reload of the snapshot from storage.
func (s *Store) Refetch() error {
	if s.userID == uuid.Nil {
		return nil
	}
	return s.reload()
}

// reload reads every list and fans out the per-list item fetches
// concurrently. A failure fetching one list's items degrades that list to
// an empty item set instead of aborting the whole reload.
func (s *Store) reload() error {
	lists, err := s.storage.GetAllLists(s.userID)
	if err != nil {
		return &PersistenceError{Op: "load lists", Err: err}
	}

	snapshot := make([]ListWithItems, len(lists))
	g := new(errgroup.Group)
	for i := range lists {
		snapshot[i].List = lists[i]
		g.Go(func() error {
			items, err := s.storage.GetItemsByList(s.userID, lists[i].ID)
			if err != nil {
				logging.Logger.WithField("list_id", lists[i].ID).
					WithError(err).Warn("Failed to load items for list")
				snapshot[i].Items = []models.ShoppingItem{}
				return nil
			}
			snapshot[i].Items = items
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	s.lists = snapshot
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *Store) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded || s.userID == uuid.Nil {
		return nil
	}
	return s.reload()
}

func (s *Store) requireUser() error {
	if s.userID == uuid.Nil {
		return validationErrorf("no user bound to this store")
	}
	return nil
}

// Lists returns a copy of the current snapshot, newest list first.
func (s *Store) Lists() ([]ListWithItems, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	lists := make([]ListWithItems, len(s.lists))
	copy(lists, s.lists)
	return lists, nil
}

// ListByID returns the snapshot entry for one list.
func (s *Store) ListByID(listID uuid.UUID) (*ListWithItems, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.lists {
		if s.lists[i].List.ID == listID {
			entry := s.lists[i]
			return &entry, nil
		}
	}
	return nil, &NotFoundError{Kind: "list"}
}

// Summary computes the derived read view of one list.
func (s *Store) Summary(listID uuid.UUID) (*ListSummary, error) {
	entry, err := s.ListByID(listID)
	if err != nil {
		return nil, err
	}
	return &ListSummary{
		List:     entry.List,
		Groups:   GroupByCategory(entry.Items),
		Progress: ProgressOf(entry.Items),
		Totals:   TotalsOf(entry.Items),
	}, nil
}

// Stats computes the cross-list rollup over the current snapshot.
func (s *Store) Stats() (Stats, error) {
	lists, err := s.Lists()
	if err != nil {
		return Stats{}, err
	}
	return Rollup(lists), nil
}

// CreateList creates a new list in planning status.
func (s *Store) CreateList(req models.CreateListRequest) (*models.ShoppingList, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationErrorf("list name must not be empty")
	}

	list, err := s.storage.CreateList(s.userID, req)
	if err != nil {
		return nil, wrapStorageError("create list", err)
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateList renames a list. Completed lists reject any mutation other
// than delete.
func (s *Store) UpdateList(listID uuid.UUID, req models.UpdateListRequest) (*models.ShoppingList, error) {
	if _, err := s.mutableList(listID); err != nil {
		return nil, err
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, validationErrorf("list name must not be empty")
	}

	list, err := s.storage.UpdateList(s.userID, listID, models.UpdateListRequest{Name: req.Name})
	if err != nil {
		return nil, wrapStorageError("update list", err)
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList removes a list and, by cascade, all of its items. Deletion is
// legal in any status.
func (s *Store) DeleteList(listID uuid.UUID) error {
	if err := s.requireUser(); err != nil {
		return err
	}
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if err := s.storage.DeleteList(s.userID, listID); err != nil {
		return wrapStorageError("delete list", err)
	}
	return s.reload()
}

// StartShopping moves a list from planning to shopping.
func (s *Store) StartShopping(listID uuid.UUID) (*models.ShoppingList, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}
	entry, err := s.ListByID(listID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(entry.List.Status, models.StatusShopping) {
		return nil, validationErrorf("cannot start shopping from status %q", entry.List.Status)
	}

	status := models.StatusShopping
	list, err := s.storage.UpdateList(s.userID, listID, models.UpdateListRequest{Status: &status})
	if err != nil {
		return nil, wrapStorageError("start shopping", err)
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return list, nil
}

// FinishShopping moves a list from shopping to completed, stamping the
// completion time. The transition is guarded: every item must already be
// purchased; the engine never auto-completes a partially purchased list.
func (s *Store) FinishShopping(listID uuid.UUID) (*models.ShoppingList, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}
	entry, err := s.ListByID(listID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(entry.List.Status, models.StatusCompleted) {
		return nil, validationErrorf("cannot finish shopping from status %q", entry.List.Status)
	}
	if !ProgressOf(entry.Items).AllPurchased {
		return nil, validationErrorf("cannot finish shopping: not all items are purchased")
	}

	status := models.StatusCompleted
	now := time.Now()
	list, err := s.storage.UpdateList(s.userID, listID, models.UpdateListRequest{
		Status:      &status,
		CompletedAt: &now,
	})
	if err != nil {
		return nil, wrapStorageError("finish shopping", err)
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return list, nil
}

// AddItem adds an item to a list that is not completed. Omitted fields
// take the defaults: category other, quantity 1, unit un, price 0.
func (s *Store) AddItem(listID uuid.UUID, req models.CreateItemRequest) (*models.ShoppingItem, error) {
	if _, err := s.mutableList(listID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationErrorf("item name must not be empty")
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		return nil, validationErrorf("item quantity must be positive")
	}
	if req.EstimatedPriceCents != nil && *req.EstimatedPriceCents < 0 {
		return nil, validationErrorf("estimated price must not be negative")
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, validationErrorf("unknown category %q", *req.Category)
	}

	item, err := s.storage.CreateItem(s.userID, listID, req)
	if err != nil {
		return nil, wrapStorageError("add item", err)
	}
	s.refreshTotals(listID)
	if err := s.reload(); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial update to an item of a non-completed list.
// An actual price may only be present on a purchased item; recording one
// never toggles the purchased flag by itself.
func (s *Store) UpdateItem(listID, itemID uuid.UUID, req models.UpdateItemRequest) (*models.ShoppingItem, error) {
	entry, err := s.mutableList(listID)
	if err != nil {
		return nil, err
	}
	current, ok := findItem(entry.Items, itemID)
	if !ok {
		return nil, &NotFoundError{Kind: "item"}
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, validationErrorf("item name must not be empty")
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		return nil, validationErrorf("item quantity must be positive")
	}
	if req.EstimatedPriceCents != nil && *req.EstimatedPriceCents < 0 {
		return nil, validationErrorf("estimated price must not be negative")
	}
	if req.ActualPriceCents != nil && *req.ActualPriceCents < 0 {
		return nil, validationErrorf("actual price must not be negative")
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, validationErrorf("unknown category %q", *req.Category)
	}

	purchased := current.IsPurchased
	if req.IsPurchased != nil {
		purchased = *req.IsPurchased
	}
	if req.ActualPriceCents != nil && !purchased {
		return nil, validationErrorf("actual price requires a purchased item")
	}

	item, err := s.storage.UpdateItem(s.userID, listID, itemID, req)
	if err != nil {
		return nil, wrapStorageError("update item", err)
	}
	s.refreshTotals(listID)
	if err := s.reload(); err != nil {
		return nil, err
	}
	return item, nil
}

// TogglePurchased flips the purchased flag of one item. Unchecking clears
// any recorded actual price.
func (s *Store) TogglePurchased(listID, itemID uuid.UUID) (*models.ShoppingItem, error) {
	entry, err := s.mutableList(listID)
	if err != nil {
		return nil, err
	}
	current, ok := findItem(entry.Items, itemID)
	if !ok {
		return nil, &NotFoundError{Kind: "item"}
	}

	flipped := !current.IsPurchased
	item, err := s.storage.UpdateItem(s.userID, listID, itemID, models.UpdateItemRequest{IsPurchased: &flipped})
	if err != nil {
		return nil, wrapStorageError("toggle purchased", err)
	}
	s.refreshTotals(listID)
	if err := s.reload(); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item from its list. Unlike other item mutations it
// carries no status guard; only the parent list must exist.
func (s *Store) DeleteItem(listID, itemID uuid.UUID) error {
	if err := s.requireUser(); err != nil {
		return err
	}
	if _, err := s.ListByID(listID); err != nil {
		return err
	}
	if err := s.storage.DeleteItem(s.userID, listID, itemID); err != nil {
		return wrapStorageError("delete item", err)
	}
	s.refreshTotals(listID)
	return s.reload()
}

// mutableList returns the snapshot entry for a list that may still be
// mutated, rejecting completed lists.
func (s *Store) mutableList(listID uuid.UUID) (*ListWithItems, error) {
	if err := s.requireUser(); err != nil {
		return nil, err
	}
	entry, err := s.ListByID(listID)
	if err != nil {
		return nil, err
	}
	if !CanModify(entry.List.Status) {
		return nil, validationErrorf("list is completed and can no longer be modified")
	}
	return entry, nil
}

// refreshTotals recomputes the cached totals on the list record from a
// fresh item read. The cache is advisory: readers always recompute from
// items, so a failed rewrite is logged rather than failing the command.
func (s *Store) refreshTotals(listID uuid.UUID) {
	items, err := s.storage.GetItemsByList(s.userID, listID)
	if err != nil {
		logging.Logger.WithField("list_id", listID).
			WithError(err).Warn("Failed to recompute cached totals")
		return
	}
	totals := TotalsOf(items)
	_, err = s.storage.UpdateList(s.userID, listID, models.UpdateListRequest{
		EstimatedTotalCents: &totals.EstimatedCents,
		ActualTotalCents:    &totals.ActualCents,
	})
	if err != nil {
		logging.Logger.WithField("list_id", listID).
			WithError(err).Warn("Failed to rewrite cached totals")
	}
}

func findItem(items []models.ShoppingItem, itemID uuid.UUID) (*models.ShoppingItem, bool) {
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], true
		}
	}
	return nil, false
}
