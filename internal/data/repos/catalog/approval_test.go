package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/villagekeep/villagekeep-backend/internal/data/repos/testutil"
	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
)

func seedApproval(t *testing.T, dbc dbctx.Context, repo ApprovalRepo, approvedAt time.Time) *types.ApprovalRecord {
	t.Helper()
	ctx := dbc.Ctx
	h := testutil.SeedHouse(t, ctx, dbc.Tx, "Adobe House")
	sh := testutil.SeedStagedHouse(t, ctx, dbc.Tx, &h.ID, 0.9)
	rec, err := repo.Insert(dbc, &types.ApprovalRecord{
		StagedHouseID: sh.ID,
		HouseID:       h.ID,
		OldName:       "Adobe House",
		NewName:       "Adobe House (Scraped)",
		ApprovedBy:    "mod@example.com",
		ApprovedAt:    approvedAt,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return rec
}

func TestApprovalRepoRecentWindowAndCap(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewApprovalRepo(db, testutil.Logger(t))

	now := time.Now().UTC()
	old := seedApproval(t, dbc, repo, now.Add(-48*time.Hour))
	for i := 0; i < 12; i++ {
		seedApproval(t, dbc, repo, now.Add(-time.Duration(i)*time.Minute))
	}

	rows, err := repo.GetRecent(dbc, now.Add(-24*time.Hour), true, 10)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("cap: want=10 got=%d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].ApprovedAt.After(rows[i-1].ApprovedAt) {
			t.Fatalf("not ordered approved_at desc at %d", i)
		}
	}
	for _, row := range rows {
		if row.ID == old.ID {
			t.Fatalf("approval outside the window returned")
		}
	}
}

func TestApprovalRepoMarkUndone(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewApprovalRepo(db, testutil.Logger(t))

	now := time.Now().UTC()
	rec := seedApproval(t, dbc, repo, now)

	claimed, err := repo.MarkUndone(dbc, rec.ID, "mod@example.com", now)
	if err != nil || !claimed {
		t.Fatalf("MarkUndone: claimed=%v err=%v", claimed, err)
	}

	// Second undo never claims the record again.
	claimed, err = repo.MarkUndone(dbc, rec.ID, "other@example.com", now)
	if err != nil || claimed {
		t.Fatalf("second MarkUndone: claimed=%v err=%v", claimed, err)
	}

	got, err := repo.GetByID(dbc, rec.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if got.UndoneAt == nil || got.UndoneBy == nil || *got.UndoneBy != "mod@example.com" {
		t.Fatalf("undo stamp wrong: %+v", got)
	}

	// Undone rows are hidden when excluded, still present otherwise.
	if rows, err := repo.GetRecent(dbc, now.Add(-time.Hour), true, 10); err != nil || len(rows) != 0 {
		t.Fatalf("GetRecent excludeUndone: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetRecent(dbc, now.Add(-time.Hour), false, 10); err != nil || len(rows) != 1 {
		t.Fatalf("GetRecent all: err=%v len=%d", err, len(rows))
	}
}
