package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

type ApprovalRepo interface {
	Insert(dbc dbctx.Context, record *types.ApprovalRecord) (*types.ApprovalRecord, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ApprovalRecord, error)
	// GetRecent lists approvals since the given time, newest first, capped
	// at limit. With excludeUndone, rows that have been undone are hidden.
	GetRecent(dbc dbctx.Context, since time.Time, excludeUndone bool, limit int) ([]*types.ApprovalRecord, error)
	// MarkUndone stamps undone_at/undone_by on a not-yet-undone record.
	// The claimed result is false when the record was already undone or
	// does not exist.
	MarkUndone(dbc dbctx.Context, id uuid.UUID, actor string, at time.Time) (claimed bool, err error)
}

type approvalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewApprovalRepo(db *gorm.DB, baseLog *logger.Logger) ApprovalRepo {
	return &approvalRepo{db: db, log: baseLog.With("repo", "ApprovalRepo")}
}

func (r *approvalRepo) Insert(dbc dbctx.Context, record *types.ApprovalRecord) (*types.ApprovalRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := transaction.WithContext(dbc.Ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *approvalRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ApprovalRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.ApprovalRecord
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

func (r *approvalRepo) GetRecent(dbc dbctx.Context, since time.Time, excludeUndone bool, limit int) ([]*types.ApprovalRecord, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(dbc.Ctx).
		Where("approved_at >= ?", since).
		Order("approved_at DESC").
		Limit(limit)
	if excludeUndone {
		query = query.Where("undone_at IS NULL")
	}
	var results []*types.ApprovalRecord
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *approvalRepo) MarkUndone(dbc dbctx.Context, id uuid.UUID, actor string, at time.Time) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Model(&types.ApprovalRecord{}).
		Where("id = ? AND undone_at IS NULL", id).
		Updates(map[string]interface{}{
			"undone_at": at,
			"undone_by": actor,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
