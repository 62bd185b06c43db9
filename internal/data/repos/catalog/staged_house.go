package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type StagedHouseRepo interface {
	// GetPending lists pending staged houses, best candidates first.
	GetPending(dbc dbctx.Context) ([]*types.StagedHouse, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.StagedHouse, error)
	// SetStatus stamps the review decision. Reason is only meaningful for
	// rejections and may be nil.
	SetStatus(dbc dbctx.Context, id uuid.UUID, status string, reviewer string, at time.Time, reason *string) error
	// ResetToPending reopens a staged house and clears all reviewer
	// metadata.
	ResetToPending(dbc dbctx.Context, id uuid.UUID) error
}

type stagedHouseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStagedHouseRepo(db *gorm.DB, baseLog *logger.Logger) StagedHouseRepo {
	return &stagedHouseRepo{db: db, log: baseLog.With("repo", "StagedHouseRepo")}
}

func (r *stagedHouseRepo) GetPending(dbc dbctx.Context) ([]*types.StagedHouse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.StagedHouse
	if err := transaction.WithContext(dbc.Ctx).
		Where("status = ?", types.StagedStatusPending).
		Order("overall_confidence_score DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *stagedHouseRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.StagedHouse, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.StagedHouse
	err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *stagedHouseRepo) SetStatus(dbc dbctx.Context, id uuid.UUID, status string, reviewer string, at time.Time, reason *string) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Model(&types.StagedHouse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"reviewed_by":   reviewer,
			"reviewed_at":   at,
			"review_reason": reason,
			"updated_at":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *stagedHouseRepo) ResetToPending(dbc dbctx.Context, id uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Model(&types.StagedHouse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        types.StagedStatusPending,
			"reviewed_by":   nil,
			"reviewed_at":   nil,
			"review_reason": nil,
			"updated_at":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
