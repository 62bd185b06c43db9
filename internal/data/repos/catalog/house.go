package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

var (
	// ErrNotFound: the targeted row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRevisionConflict: the row moved under us; the caller's pre-image
	// is stale.
	ErrRevisionConflict = errors.New("revision conflict")
)

type HouseRepo interface {
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.House, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.House, error)
	GetAll(dbc dbctx.Context) ([]*types.House, error)
	// UpdateReconciledFields overwrites the five reconciled columns as a
	// unit, guarded by a revision compare-and-swap. ErrRevisionConflict
	// when the row exists at a different revision, ErrNotFound when it is
	// gone.
	UpdateReconciledFields(dbc dbctx.Context, id uuid.UUID, fields types.ReconciledFields, expectedRevision int) error
	// ApplyUpdate writes the non-nil fields of a typed partial update.
	ApplyUpdate(dbc dbctx.Context, id uuid.UUID, update types.HouseUpdate) error
}

type houseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHouseRepo(db *gorm.DB, baseLog *logger.Logger) HouseRepo {
	return &houseRepo{db: db, log: baseLog.With("repo", "HouseRepo")}
}

func (r *houseRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.House, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.House
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

func (r *houseRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.House, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.House
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *houseRepo) GetAll(dbc dbctx.Context) ([]*types.House, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.House
	if err := transaction.WithContext(dbc.Ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *houseRepo) UpdateReconciledFields(dbc dbctx.Context, id uuid.UUID, fields types.ReconciledFields, expectedRevision int) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return ErrNotFound
	}

	res := transaction.WithContext(dbc.Ctx).
		Model(&types.House{}).
		Where("id = ? AND revision = ?", id, expectedRevision).
		Updates(map[string]interface{}{
			"name":        fields.Name,
			"year":        fields.Year,
			"item_number": fields.ItemNumber,
			"notes":       fields.Notes,
			"photo_url":   fields.PhotoURL,
			"revision":    gorm.Expr("revision + 1"),
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}
		r.log.Warn("reconciled update lost a revision race", "house_id", id.String(), "expected_revision", expectedRevision, "actual_revision", existing.Revision)
		return ErrRevisionConflict
	}
	return nil
}

func (r *houseRepo) ApplyUpdate(dbc dbctx.Context, id uuid.UUID, update types.HouseUpdate) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return ErrNotFound
	}
	if update.IsZero() {
		return nil
	}

	values := map[string]interface{}{
		"revision":   gorm.Expr("revision + 1"),
		"updated_at": time.Now().UTC(),
	}
	if update.Year != nil {
		values["year"] = *update.Year
	}
	if update.RetiredYear != nil {
		values["retired_year"] = *update.RetiredYear
	}
	if update.ItemNumber != nil {
		values["item_number"] = *update.ItemNumber
	}
	if update.Notes != nil {
		values["notes"] = *update.Notes
	}
	if update.PhotoURL != nil {
		values["photo_url"] = *update.PhotoURL
	}
	if update.Collection != nil {
		values["collection"] = *update.Collection
	}
	if update.Price != nil {
		values["price"] = *update.Price
	}

	res := transaction.WithContext(dbc.Ctx).
		Model(&types.House{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
