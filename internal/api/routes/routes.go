package routes

import (
	"stone-ledger-backend/internal/api/handlers"
	"stone-ledger-backend/internal/api/middleware"
	"stone-ledger-backend/internal/auth"
	"stone-ledger-backend/internal/config"
	"stone-ledger-backend/internal/diagnostics"
	"stone-ledger-backend/internal/repository"
	"stone-ledger-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	validator := validator.New()

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	materialRateRepo := repository.NewMaterialRateRepository(db)
	entryTypeMaterialRepo := repository.NewEntryTypeMaterialRepository(db)
	truckEntryRepo := repository.NewTruckEntryRepository(db)
	otherExpenseRepo := repository.NewOtherExpenseRepository(db)

	// Services
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, validator)
	userService := service.NewUserService(userRepo, validator)
	materialRateService := service.NewMaterialRateService(materialRateRepo, organizationRepo, validator)
	entryMappingService := service.NewEntryMappingService(entryTypeMaterialRepo, materialRateRepo)
	truckEntryService := service.NewTruckEntryService(truckEntryRepo, materialRateRepo, entryTypeMaterialRepo, validator)
	otherExpenseService := service.NewOtherExpenseService(otherExpenseRepo, validator)

	// Auth
	authService := auth.NewAuthService(cfg.JWTSecret, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.DatabaseURL)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	materialRateHandler := handlers.NewMaterialRateHandler(materialRateService)
	entryMappingHandler := handlers.NewEntryMappingHandler(entryMappingService)
	truckEntryHandler := handlers.NewTruckEntryHandler(truckEntryService)
	otherExpenseHandler := handlers.NewOtherExpenseHandler(otherExpenseService)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(diagnostics.NewReporter(entryTypeMaterialRepo, materialRateRepo))

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.Validate)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.GET("/by-name/:name", organizationHandler.GetOrganizationByName)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/users", userHandler.GetUsersByOrganization)
			organizations.GET("/:id/material-rates", materialRateHandler.GetMaterialRatesByOrganization)
			organizations.GET("/:id/entry-mappings", entryMappingHandler.ListMappings)
			organizations.DELETE("/:id/entry-mappings", entryMappingHandler.ClearMappings)
			organizations.GET("/:id/truck-entries", truckEntryHandler.GetTruckEntriesByOrganization)
			organizations.GET("/:id/expenses", otherExpenseHandler.GetExpensesByOrganization)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id/active", userHandler.SetUserActive)
		}

		materialRates := v1.Group("/material-rates")
		{
			materialRates.POST("", materialRateHandler.CreateMaterialRate)
			materialRates.GET("/:id", materialRateHandler.GetMaterialRate)
			materialRates.PUT("/:id", materialRateHandler.UpdateMaterialRate)
			materialRates.DELETE("/:id", materialRateHandler.DeleteMaterialRate)
		}

		entryMappings := v1.Group("/entry-mappings")
		{
			entryMappings.POST("", entryMappingHandler.AddMapping)
			entryMappings.DELETE("", entryMappingHandler.RemoveMapping)
		}

		truckEntries := v1.Group("/truck-entries")
		{
			truckEntries.POST("", truckEntryHandler.CreateTruckEntry)
			truckEntries.GET("/:id", truckEntryHandler.GetTruckEntry)
			truckEntries.PATCH("/:id/status", truckEntryHandler.UpdateTruckEntryStatus)
			truckEntries.DELETE("/:id", truckEntryHandler.DeleteTruckEntry)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.POST("", otherExpenseHandler.CreateExpense)
			expenses.GET("/:id", otherExpenseHandler.GetExpense)
			expenses.DELETE("/:id", otherExpenseHandler.DeleteExpense)
		}

		diagnosticsGroup := v1.Group("/diagnostics")
		{
			diagnosticsGroup.GET("/bridge", diagnosticsHandler.BridgeReport)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, dsn string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, dsn)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
