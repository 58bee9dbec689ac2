package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shoplist-api/internal/engine"
	"shoplist-api/internal/models"
	"shoplist-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	userID := uuid.New()

	t.Run("rolls up the collection", func(t *testing.T) {
		router, mgr := setupRouter(userID)
		store := mgr.For(userID)

		done, err := store.CreateList(models.CreateListRequest{Name: "Done"})
		require.NoError(t, err)
		added, err := store.AddItem(done.ID, models.CreateItemRequest{
			Name:                "Bread",
			EstimatedPriceCents: testutil.Int64Ptr(1000),
		})
		require.NoError(t, err)
		_, err = store.StartShopping(done.ID)
		require.NoError(t, err)
		_, err = store.UpdateItem(done.ID, added.ID, models.UpdateItemRequest{
			IsPurchased:      testutil.BoolPtr(true),
			ActualPriceCents: testutil.Int64Ptr(800),
		})
		require.NoError(t, err)
		_, err = store.FinishShopping(done.ID)
		require.NoError(t, err)

		open, err := store.CreateList(models.CreateListRequest{Name: "Open"})
		require.NoError(t, err)

		w := doRequest(t, router, "GET", "/api/v1/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stats engine.Stats
		testutil.ParseJSONResponse(t, w, &stats)
		assert.Equal(t, 2, stats.TotalLists)
		assert.Equal(t, 1, stats.ActiveLists)
		assert.Equal(t, 1, stats.CompletedLists)
		assert.Equal(t, int64(200), stats.TotalSavedCents)
		require.NotNil(t, stats.ActiveList)
		assert.Equal(t, open.ID, stats.ActiveList.ID)
	})

	t.Run("empty collection", func(t *testing.T) {
		router, _ := setupRouter(userID)

		w := doRequest(t, router, "GET", "/api/v1/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stats engine.Stats
		testutil.ParseJSONResponse(t, w, &stats)
		assert.Equal(t, 0, stats.TotalLists)
		assert.Nil(t, stats.ActiveList)
	})

	t.Run("requires authentication", func(t *testing.T) {
		router, _ := setupRouter(uuid.Nil)

		w := doRequest(t, router, "GET", "/api/v1/stats", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRefresh(t *testing.T) {
	userID := uuid.New()
	router, _ := setupRouter(userID)

	w := doRequest(t, router, "POST", "/api/v1/refresh", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(nil)

	router := gin.New()
	router.GET("/health", handler.BasicHealth)
	router.GET("/health/ready", handler.ReadinessProbe)
	router.GET("/health/live", handler.LivenessProbe)

	t.Run("basic health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.MakeJSONRequest(t, "GET", "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "healthy")
	})

	t.Run("readiness without a database is ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.MakeJSONRequest(t, "GET", "/health/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ready")
	})

	t.Run("liveness", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.MakeJSONRequest(t, "GET", "/health/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alive")
	})
}
