package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/villagekeep/villagekeep-backend/internal/data/repos/testutil"
	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
)

func TestHouseRepoReconciledFieldsCAS(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewHouseRepo(db, testutil.Logger(t))

	h := testutil.SeedHouse(t, ctx, tx, "Adobe House")

	year := 2005
	sku := "56.58344"
	fields := types.ReconciledFields{
		Name:       "Adobe House (Revised)",
		Year:       &year,
		ItemNumber: &sku,
	}
	if err := repo.UpdateReconciledFields(dbc, h.ID, fields, 0); err != nil {
		t.Fatalf("UpdateReconciledFields: %v", err)
	}

	got, err := repo.GetByID(dbc, h.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if got.Name != "Adobe House (Revised)" || got.Year == nil || *got.Year != 2005 {
		t.Fatalf("unexpected row after update: %+v", got)
	}
	if got.Revision != 1 {
		t.Fatalf("revision: want=1 got=%d", got.Revision)
	}
	if got.Notes != nil || got.PhotoURL != nil {
		t.Fatalf("nil pre-image fields must persist as NULL: %+v", got)
	}

	// Stale revision loses the race.
	err = repo.UpdateReconciledFields(dbc, h.ID, fields, 0)
	if !errors.Is(err, ErrRevisionConflict) {
		t.Fatalf("stale update: want ErrRevisionConflict got %v", err)
	}

	// Missing row.
	err = repo.UpdateReconciledFields(dbc, uuid.New(), fields, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing row: want ErrNotFound got %v", err)
	}
}

func TestHouseRepoApplyUpdate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewHouseRepo(db, testutil.Logger(t))

	h := testutil.SeedHouse(t, ctx, tx, "Crooked Fence Cottage")

	coll := "Snow Village"
	year := 1998
	if err := repo.ApplyUpdate(dbc, h.ID, types.HouseUpdate{Collection: &coll, Year: &year}); err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}

	got, err := repo.GetByID(dbc, h.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if got.Collection == nil || *got.Collection != coll {
		t.Fatalf("collection not applied: %+v", got)
	}
	if got.Year == nil || *got.Year != year {
		t.Fatalf("year not applied: %+v", got)
	}
	if got.Name != "Crooked Fence Cottage" {
		t.Fatalf("untouched field changed: %+v", got)
	}
	if got.Revision != 1 {
		t.Fatalf("revision: want=1 got=%d", got.Revision)
	}

	// Empty update is a no-op, not an error.
	if err := repo.ApplyUpdate(dbc, h.ID, types.HouseUpdate{}); err != nil {
		t.Fatalf("empty ApplyUpdate: %v", err)
	}

	if err := repo.ApplyUpdate(dbc, uuid.New(), types.HouseUpdate{Year: &year}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing row: want ErrNotFound got %v", err)
	}
}

func TestHouseRepoGetByIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewHouseRepo(db, testutil.Logger(t))

	h1 := testutil.SeedHouse(t, ctx, tx, "House One")
	h2 := testutil.SeedHouse(t, ctx, tx, "House Two")

	rows, err := repo.GetByIDs(dbc, []uuid.UUID{h1.ID, h2.ID})
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	rows, err = repo.GetByIDs(dbc, nil)
	if err != nil || len(rows) != 0 {
		t.Fatalf("GetByIDs(nil): err=%v len=%d", err, len(rows))
	}
}
