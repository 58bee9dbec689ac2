package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shoplist-api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	// Run migrations manually for SQLite compatibility
	// SQLite doesn't support PostgreSQL UUID functions
	err = db.Exec(`CREATE TABLE IF NOT EXISTS shopping_lists (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'planning',
		estimated_total_cents INTEGER NOT NULL DEFAULT 0,
		actual_total_cents INTEGER NOT NULL DEFAULT 0,
		completed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	)`).Error
	require.NoError(t, err, "Failed to create shopping_lists table")

	err = db.Exec(`CREATE TABLE IF NOT EXISTS shopping_items (
		id TEXT PRIMARY KEY,
		list_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'other',
		quantity REAL NOT NULL DEFAULT 1,
		unit TEXT NOT NULL DEFAULT 'un',
		estimated_price_cents INTEGER NOT NULL DEFAULT 0,
		actual_price_cents INTEGER,
		is_purchased INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		FOREIGN KEY(list_id) REFERENCES shopping_lists(id) ON DELETE CASCADE
	)`).Error
	require.NoError(t, err, "Failed to create shopping_items table")

	// Create indexes
	db.Exec(`CREATE INDEX idx_shopping_lists_user_id ON shopping_lists(user_id)`)
	db.Exec(`CREATE INDEX idx_shopping_lists_deleted_at ON shopping_lists(deleted_at)`)
	db.Exec(`CREATE INDEX idx_shopping_items_list_id ON shopping_items(list_id)`)
	db.Exec(`CREATE INDEX idx_shopping_items_deleted_at ON shopping_items(deleted_at)`)

	return db
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	sqlDB, err := db.DB()
	require.NoError(t, err)
	err = sqlDB.Close()
	require.NoError(t, err)
}

// MakeJSONRequest creates an HTTP request with JSON body
func MakeJSONRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var bodyReader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		bodyReader = bytes.NewReader(jsonBody)
	} else {
		bodyReader = bytes.NewReader([]byte{})
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ParseJSONResponse parses a JSON response into a target structure
func ParseJSONResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err, "Failed to parse JSON response")
}

// TimePtr returns a pointer to a time.Time value
func TimePtr(t time.Time) *time.Time {
	return &t
}

// StringPtr returns a pointer to a string value
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// Int64Ptr returns a pointer to an int64 value
func Int64Ptr(n int64) *int64 {
	return &n
}

// Float64Ptr returns a pointer to a float64 value
func Float64Ptr(f float64) *float64 {
	return &f
}

// CategoryPtr returns a pointer to a Category value
func CategoryPtr(c models.Category) *models.Category {
	return &c
}

// UnitPtr returns a pointer to a Unit value
func UnitPtr(u models.Unit) *models.Unit {
	return &u
}
