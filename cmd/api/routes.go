package main

import (
	"context"
	"net/http"
	"time"

	"urbannest-properties/internal/middleware"
	"urbannest-properties/pkg/cache"
	"urbannest-properties/pkg/database"
	"urbannest-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupStaticRoutes configures documentation and operational endpoints
func (a *App) setupStaticRoutes() {
	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Printf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	authRequired := middleware.AuthMiddleware(a.Config.JWT.Secret)

	api := a.Router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", a.UserHandler.Register)
			auth.POST("/login", a.UserHandler.Login)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", a.PropertyHandler.ListProperties)
			properties.GET("/my", authRequired, a.PropertyHandler.GetMyProperties)
			properties.GET("/:id", a.PropertyHandler.GetProperty)
			properties.POST("", authRequired, a.PropertyHandler.CreateProperty)
			properties.PUT("/:id", authRequired, a.PropertyHandler.UpdateProperty)
			properties.DELETE("/:id", authRequired, a.PropertyHandler.DeleteProperty)
			properties.POST("/evaluate", authRequired, a.EvaluateHandler.EvaluateProperty)
		}

		favorites := api.Group("/favorites", authRequired)
		{
			favorites.GET("", a.FavoriteHandler.ListFavorites)
			favorites.POST("/:id", a.FavoriteHandler.AddFavorite)
			favorites.DELETE("/:id", a.FavoriteHandler.RemoveFavorite)
		}

		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("", authRequired, a.RecommendationHandler.ReceivedRecommendations)
			recommendations.POST("/:propertyId", authRequired, a.RecommendationHandler.RecommendProperty)
		}

		csvImport := api.Group("/csv-import")
		{
			csvImport.GET("/template", a.ImportHandler.ImportTemplate)
			csvImport.POST("", authRequired, a.ImportHandler.ImportCSV)
			csvImport.POST("/direct", authRequired, a.ImportHandler.ImportDirect)
		}
	}
}
