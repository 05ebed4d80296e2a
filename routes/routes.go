package routes

import (
	"net/http"

	"catalog-backend/config"
	"catalog-backend/controllers"
	"catalog-backend/middleware"
	"catalog-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Local-storage uploads are served read-only from here. Harmless when the
	// cloud backend is active.
	r.Static(storage.LocalURLPrefix, cfg.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		api.POST("/login", ctrl.Login)

		api.GET("/products", ctrl.ListProducts)
		api.GET("/products/:id", ctrl.GetProduct)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(cfg.TokenSecretKey))
		{
			protected.POST("/products", ctrl.CreateProduct)
			protected.PUT("/products/:id", ctrl.UpdateProduct)
			protected.PATCH("/products/:id", ctrl.ToggleFeatured)
			protected.DELETE("/products/:id", ctrl.DeleteProduct)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
