package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
	"github.com/villagekeep/villagekeep-backend/internal/searchindex"
	"github.com/villagekeep/villagekeep-backend/internal/services"
)

type Services struct {
	Review     services.ReviewService
	Enrichment services.EnrichmentService
	Catalog    services.CatalogService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, cache *redis.Client) Services {
	authz := newEmailAllowList(cfg.Moderators)
	index := searchindex.NewHTTPLoader(log, cfg.SearchIndexURL, nil, cache, cfg.IndexCacheTTL)

	return Services{
		Review:     services.NewReviewService(db, log, repos.Staged, repos.Houses, repos.Approvals, authz),
		Enrichment: services.NewEnrichmentService(db, log, repos.Houses, index),
		Catalog:    services.NewCatalogService(db, log, repos.Houses, repos.Accessories, authz),
	}
}
