package main

import (
	"net/http"
	"os"

	"urbannest-properties/internal/handlers"
	"urbannest-properties/internal/middleware"
	"urbannest-properties/internal/repositories"
	"urbannest-properties/internal/services"
	"urbannest-properties/pkg/cache"
	"urbannest-properties/pkg/config"
	"urbannest-properties/pkg/database"
	"urbannest-properties/pkg/gemini"
	"urbannest-properties/pkg/logger"
	"urbannest-properties/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App wires the application together
type App struct {
	Config                *config.Config
	Router                *gin.Engine
	PropertyHandler       *handlers.PropertyHandler
	UserHandler           *handlers.UserHandler
	FavoriteHandler       *handlers.FavoriteHandler
	RecommendationHandler *handlers.RecommendationHandler
	ImportHandler         *handlers.ImportHandler
	EvaluateHandler       *handlers.EvaluateHandler
	RateLimiter           *middleware.RateLimiter
	Server                *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	propertyRepo := repositories.NewPropertyRepository()
	propertyCache := repositories.NewPropertyCache()
	userRepo := repositories.NewUserRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	recommendationRepo := repositories.NewRecommendationRepository()
	marketRepo := repositories.NewMarketRepository()

	// external clients
	geminiClient := gemini.NewClient(a.Config.Gemini.APIKey, a.Config.Gemini.Model)

	// services
	listingService := services.NewListingService(propertyRepo, userRepo, propertyCache)
	mutationService := services.NewMutationService(propertyRepo, propertyCache)
	importService := services.NewImportService(propertyRepo, propertyCache)
	evaluationService := services.NewEvaluationService(marketRepo, geminiClient)
	userService := services.NewUserService(userRepo, a.Config.JWT.Secret)
	favoriteService := services.NewFavoriteService(favoriteRepo, propertyRepo, listingService)
	recommendationService := services.NewRecommendationService(recommendationRepo, propertyRepo, userRepo)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(listingService, mutationService)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.FavoriteHandler = handlers.NewFavoriteHandler(favoriteService)
	a.RecommendationHandler = handlers.NewRecommendationHandler(recommendationService)
	a.ImportHandler = handlers.NewImportHandler(importService, a.Config.Import.FilePath)
	a.EvaluateHandler = handlers.NewEvaluateHandler(evaluationService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
