package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepo "github.com/villagekeep/villagekeep-backend/internal/data/repos/catalog"
	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/apierr"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

// CatalogService reads the canonical catalog and applies targeted
// enrichment updates to single houses.
type CatalogService interface {
	ListHouses(ctx context.Context) ([]*types.House, error)
	GetHouse(ctx context.Context, id uuid.UUID) (*types.House, error)
	GetHouseAccessories(ctx context.Context, houseID uuid.UUID) ([]*types.Accessory, error)
	ApplyEnrichment(ctx context.Context, houseID uuid.UUID, enrichment types.Enrichment, actor string) error
}

type catalogService struct {
	db          *gorm.DB
	log         *logger.Logger
	houses      catalogrepo.HouseRepo
	accessories catalogrepo.AccessoryRepo
	authz       Authorizer
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	houses catalogrepo.HouseRepo,
	accessories catalogrepo.AccessoryRepo,
	authz Authorizer,
) CatalogService {
	return &catalogService{
		db:          db,
		log:         baseLog.With("service", "CatalogService"),
		houses:      houses,
		accessories: accessories,
		authz:       authz,
	}
}

func (s *catalogService) ListHouses(ctx context.Context) ([]*types.House, error) {
	return s.houses.GetAll(dbctx.Context{Ctx: ctx})
}

func (s *catalogService) GetHouse(ctx context.Context, id uuid.UUID) (*types.House, error) {
	house, err := s.houses.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, fmt.Errorf("house %s: %w", id, catalogrepo.ErrNotFound)
	}
	return house, nil
}

func (s *catalogService) GetHouseAccessories(ctx context.Context, houseID uuid.UUID) ([]*types.Accessory, error) {
	dbc := dbctx.Context{Ctx: ctx}
	house, err := s.houses.GetByID(dbc, houseID)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, fmt.Errorf("house %s: %w", houseID, catalogrepo.ErrNotFound)
	}
	return s.accessories.GetByHouseID(dbc, houseID)
}

func (s *catalogService) ApplyEnrichment(ctx context.Context, houseID uuid.UUID, enrichment types.Enrichment, actor string) error {
	if !s.authz.CanModerate(ctx, actor) {
		return ErrForbidden
	}
	update, err := enrichment.ToHouseUpdate()
	if err != nil {
		return apierr.BadRequest("invalid_enrichment", err)
	}
	if err := s.houses.ApplyUpdate(dbctx.Context{Ctx: ctx}, houseID, update); err != nil {
		return err
	}
	s.log.Info("enrichment applied", "house_id", houseID.String(), "field", string(enrichment.Field))
	return nil
}
