package main

import (
	"os"

	"shoplist-api/internal/auth"
	"shoplist-api/internal/database"
	"shoplist-api/internal/engine"
	"shoplist-api/internal/handlers"
	"shoplist-api/internal/logging"
	"shoplist-api/internal/middleware"
	"shoplist-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize logging first
	logConfig := logging.NewLogConfigFromEnv()
	logging.InitLogger(logConfig)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Check if we should use in-memory storage (for development)
	useInMemory := os.Getenv("USE_MEMORY_STORAGE") == "true"

	var store storage.Store
	var db *gorm.DB

	if useInMemory {
		logging.Logger.Info("Using in-memory storage")
		store = storage.NewStorage()
	} else {
		// Initialize PostgreSQL connection
		dbConfig := database.NewConfigFromEnv()
		conn, err := database.Connect(dbConfig)
		if err != nil {
			logging.Logger.Fatalf("Failed to connect to database: %v", err)
		}

		// Run migrations
		if err := database.AutoMigrate(conn); err != nil {
			logging.Logger.Fatalf("Failed to run migrations: %v", err)
		}

		logging.Logger.Info("PostgreSQL storage initialized successfully")
		db = conn
		store = storage.NewPostgresStorage(conn)
	}

	mgr := engine.NewManager(store)
	listHandler := handlers.NewListHandler(mgr)
	itemHandler := handlers.NewItemHandler(mgr)
	statsHandler := handlers.NewStatsHandler(mgr)
	healthHandler := handlers.NewHealthHandler(db)

	// Set up Gin router (without default logger since we'll use our own)
	router := gin.New()
	router.Use(gin.Recovery())

	// Add security headers (should be first)
	router.Use(middleware.SecurityHeaders())

	// Add CORS middleware
	corsConfig := middleware.NewCORSConfigFromEnv()
	router.Use(middleware.CORS(corsConfig))

	// Add request size limit
	securityConfig := middleware.NewSecurityConfigFromEnv()
	router.Use(middleware.RequestSizeLimit(securityConfig.MaxRequestBodySize))

	// Add request logging middleware
	router.Use(middleware.RequestLogger())

	jwtConfig := auth.NewJWTConfigFromEnv()
	rateLimitConfig := middleware.NewRateLimitConfigFromEnv()

	// API version 1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(jwtConfig))
	v1.Use(middleware.PerUserRateLimiter(rateLimitConfig))
	{
		lists := v1.Group("/lists")
		{
			lists.GET("", listHandler.GetAllLists)
			lists.POST("", listHandler.CreateList)

			// Routes with listId parameter - validate UUID
			lists.GET("/:listId", middleware.UUIDValidator("listId"), listHandler.GetListByID)
			lists.PUT("/:listId", middleware.UUIDValidator("listId"), listHandler.UpdateList)
			lists.DELETE("/:listId", middleware.UUIDValidator("listId"), listHandler.DeleteList)

			// Lifecycle transitions and the derived summary view
			lists.POST("/:listId/start", middleware.UUIDValidator("listId"), listHandler.StartShopping)
			lists.POST("/:listId/finish", middleware.UUIDValidator("listId"), listHandler.FinishShopping)
			lists.GET("/:listId/summary", middleware.UUIDValidator("listId"), listHandler.GetListSummary)

			// Item routes (nested under lists) - validate both listId and itemId
			lists.POST("/:listId/items", middleware.UUIDValidator("listId"), itemHandler.CreateItem)
			lists.PUT("/:listId/items/:itemId", middleware.UUIDValidator("listId", "itemId"), itemHandler.UpdateItem)
			lists.DELETE("/:listId/items/:itemId", middleware.UUIDValidator("listId", "itemId"), itemHandler.DeleteItem)
			lists.POST("/:listId/items/:itemId/toggle", middleware.UUIDValidator("listId", "itemId"), itemHandler.TogglePurchased)
		}

		v1.GET("/stats", statsHandler.GetStats)
		v1.POST("/refresh", statsHandler.Refresh)
		v1.GET("/categorize", itemHandler.SuggestCategory)
	}

	// Health check endpoints
	router.GET("/health", healthHandler.BasicHealth)
	router.GET("/health/ready", healthHandler.ReadinessProbe)
	router.GET("/health/live", healthHandler.LivenessProbe)

	// Start server
	logging.Logger.Infof("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
