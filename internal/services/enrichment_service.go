package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogrepo "github.com/villagekeep/villagekeep-backend/internal/data/repos/catalog"
	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/matching"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
	"github.com/villagekeep/villagekeep-backend/internal/searchindex"
)

// EnrichmentService sweeps the whole catalog against the scraped search
// index and reports enrichment opportunities. Scan is read-only: it never
// writes to the catalog.
type EnrichmentService interface {
	Scan(ctx context.Context) (matching.ScanResult, error)
}

type enrichmentService struct {
	db     *gorm.DB
	log    *logger.Logger
	houses catalogrepo.HouseRepo
	index  searchindex.Loader
}

func NewEnrichmentService(db *gorm.DB, baseLog *logger.Logger, houses catalogrepo.HouseRepo, index searchindex.Loader) EnrichmentService {
	return &enrichmentService{
		db:     db,
		log:    baseLog.With("service", "EnrichmentService"),
		houses: houses,
		index:  index,
	}
}

func (s *enrichmentService) Scan(ctx context.Context) (matching.ScanResult, error) {
	rows, err := s.houses.GetAll(dbctx.Context{Ctx: ctx})
	if err != nil {
		return matching.ScanResult{}, err
	}

	products, err := s.index.Load(ctx)
	if err != nil {
		// An unreachable or malformed index is an expected failure mode:
		// the scan degrades to an unsuccessful result instead of erroring.
		if errors.Is(err, searchindex.ErrIndexUnavailable) {
			s.log.Warn("search index unavailable, scan degraded", "error", err)
			return matching.ScanResult{Success: false, TotalScanned: len(rows)}, nil
		}
		return matching.ScanResult{}, err
	}

	houses := make([]types.House, 0, len(rows))
	for _, row := range rows {
		houses = append(houses, *row)
	}

	result := matching.Scan(houses, products)
	s.log.Info("enrichment scan finished",
		"scanned", result.TotalScanned,
		"opportunities", result.OpportunitiesFound,
		"index_size", result.IndexSize)
	return result, nil
}
