package app

import (
	"github.com/villagekeep/villagekeep-backend/internal/handlers"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type Handlers struct {
	Review     *handlers.ReviewHandler
	Enrichment *handlers.EnrichmentHandler
	Catalog    *handlers.CatalogHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	return Handlers{
		Review:     handlers.NewReviewHandler(log, services.Review),
		Enrichment: handlers.NewEnrichmentHandler(log, services.Enrichment),
		Catalog:    handlers.NewCatalogHandler(log, services.Catalog),
	}
}
