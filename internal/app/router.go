package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/villagekeep/villagekeep-backend/internal/handlers"
)

func wireRouter(cfg Config, h Handlers, mw Middleware) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/api/health", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(mw.Auth.RequireAuth())

	// Catalog browsing
	api.GET("/houses", h.Catalog.ListHouses)
	api.GET("/houses/:id", h.Catalog.GetHouse)
	api.GET("/houses/:id/accessories", h.Catalog.GetHouseAccessories)
	api.POST("/houses/:id/enrichments/apply", h.Catalog.ApplyEnrichment)

	// Staged review
	api.GET("/review/pending", h.Review.ListPending)
	api.POST("/review/:id/approve", h.Review.Approve)
	api.POST("/review/:id/reject", h.Review.Reject)
	api.POST("/review/bulk-approve", h.Review.BulkApprove)
	api.GET("/review/recent", h.Review.Recent)
	api.POST("/review/approvals/:id/undo", h.Review.Undo)

	// Enrichment scanning
	api.POST("/enrichment/scan", h.Enrichment.Scan)

	return router
}
