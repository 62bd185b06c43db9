package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type AccessoryRepo interface {
	GetByHouseID(dbc dbctx.Context, houseID uuid.UUID) ([]*types.Accessory, error)
	Create(dbc dbctx.Context, accessories []*types.Accessory) ([]*types.Accessory, error)
}

type accessoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccessoryRepo(db *gorm.DB, baseLog *logger.Logger) AccessoryRepo {
	return &accessoryRepo{db: db, log: baseLog.With("repo", "AccessoryRepo")}
}

func (r *accessoryRepo) GetByHouseID(dbc dbctx.Context, houseID uuid.UUID) ([]*types.Accessory, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Accessory
	if houseID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("house_id = ?", houseID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *accessoryRepo) Create(dbc dbctx.Context, accessories []*types.Accessory) ([]*types.Accessory, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(accessories) == 0 {
		return []*types.Accessory{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&accessories).Error; err != nil {
		return nil, err
	}
	return accessories, nil
}
