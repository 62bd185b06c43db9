package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepo "github.com/villagekeep/villagekeep-backend/internal/data/repos/catalog"
	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/dbctx"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

// recentWindow is how far back the recent-approvals feed looks.
const recentWindow = 24 * time.Hour

// recentPageSize caps the recent-approvals feed.
const recentPageSize = 10

// BulkFailure is one failed item of a bulk approval.
type BulkFailure struct {
	StagedHouseID uuid.UUID `json:"staged_house_id"`
	Message       string    `json:"message"`
}

// BulkResult reports a bulk approval. Partial success is expected and
// visible: the batch is not transactional.
type BulkResult struct {
	Approved int           `json:"approved"`
	Failed   int           `json:"failed"`
	Failures []BulkFailure `json:"failures,omitempty"`
}

// ReviewService is the staged-house reconciliation state machine:
// pending -> approved/rejected, approved -> pending via undo. Rejection is
// terminal. Approve guarantees backup-before-mutate: the approval-history
// row is written and confirmed before the house is touched.
type ReviewService interface {
	ListPending(ctx context.Context) ([]*types.StagedHouse, error)
	Approve(ctx context.Context, stagedID uuid.UUID, reviewer string) (*types.ApprovalRecord, error)
	Reject(ctx context.Context, stagedID uuid.UUID, reviewer, reason string) error
	Undo(ctx context.Context, approvalID uuid.UUID, actor string) (*types.ApprovalRecord, error)
	BulkApprove(ctx context.Context, stagedIDs []uuid.UUID, reviewer string) BulkResult
	RecentApprovals(ctx context.Context) ([]*types.ApprovalRecord, error)
}

type reviewService struct {
	db        *gorm.DB
	log       *logger.Logger
	staged    catalogrepo.StagedHouseRepo
	houses    catalogrepo.HouseRepo
	approvals catalogrepo.ApprovalRepo
	authz     Authorizer
}

func NewReviewService(
	db *gorm.DB,
	baseLog *logger.Logger,
	staged catalogrepo.StagedHouseRepo,
	houses catalogrepo.HouseRepo,
	approvals catalogrepo.ApprovalRepo,
	authz Authorizer,
) ReviewService {
	return &reviewService{
		db:        db,
		log:       baseLog.With("service", "ReviewService"),
		staged:    staged,
		houses:    houses,
		approvals: approvals,
		authz:     authz,
	}
}

func (s *reviewService) ListPending(ctx context.Context) ([]*types.StagedHouse, error) {
	return s.staged.GetPending(dbctx.Context{Ctx: ctx})
}

func (s *reviewService) Approve(ctx context.Context, stagedID uuid.UUID, reviewer string) (*types.ApprovalRecord, error) {
	if !s.authz.CanModerate(ctx, reviewer) {
		return nil, ErrForbidden
	}
	dbc := dbctx.Context{Ctx: ctx}

	staged, err := s.staged.GetByID(dbc, stagedID)
	if err != nil {
		return nil, err
	}
	if staged == nil {
		return nil, fmt.Errorf("staged house %s: %w", stagedID, catalogrepo.ErrNotFound)
	}
	if staged.Status != types.StagedStatusPending {
		return nil, fmt.Errorf("staged house %s is %s: %w", stagedID, staged.Status, ErrNotPending)
	}
	if staged.OriginalHouseID == nil {
		return nil, ErrNoLinkedHouse
	}

	house, err := s.houses.GetByID(dbc, *staged.OriginalHouseID)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, fmt.Errorf("linked house %s: %w", *staged.OriginalHouseID, catalogrepo.ErrNotFound)
	}

	pre := house.Reconciled()
	post := postImage(staged)
	now := time.Now().UTC()

	record := &types.ApprovalRecord{
		StagedHouseID: staged.ID,
		HouseID:       house.ID,
		OldName:       pre.Name,
		OldYear:       pre.Year,
		OldItemNumber: pre.ItemNumber,
		OldNotes:      pre.Notes,
		OldPhotoURL:   pre.PhotoURL,
		NewName:       post.Name,
		NewYear:       post.Year,
		NewItemNumber: post.ItemNumber,
		NewNotes:      post.Notes,
		NewPhotoURL:   post.PhotoURL,
		ApprovedBy:    reviewer,
		ApprovedAt:    now,
	}

	// The backup must be durable before the house is touched; it is what
	// makes undo possible. On failure the house is left untouched.
	record, err = s.approvals.Insert(dbc, record)
	if err != nil {
		s.log.Error("approval backup failed", "staged_house_id", staged.ID.String(), "error", err)
		return nil, writeErr(WriteStepBackup, err)
	}

	// Revision read with the pre-image, enforced here: a concurrent
	// approval of the same house surfaces as a conflict, not a lost
	// update.
	if err := s.houses.UpdateReconciledFields(dbc, house.ID, post, house.Revision); err != nil {
		s.log.Error("canonical update failed after backup", "house_id", house.ID.String(), "approval_id", record.ID.String(), "error", err)
		return nil, writeErr(WriteStepCanonical, err)
	}

	if err := s.staged.SetStatus(dbc, staged.ID, types.StagedStatusApproved, reviewer, now, nil); err != nil {
		s.log.Error("status flip failed after canonical update", "staged_house_id", staged.ID.String(), "approval_id", record.ID.String(), "error", err)
		return nil, writeErr(WriteStepStatus, err)
	}

	s.log.Info("staged house approved", "staged_house_id", staged.ID.String(), "house_id", house.ID.String(), "approval_id", record.ID.String())
	return record, nil
}

func (s *reviewService) Reject(ctx context.Context, stagedID uuid.UUID, reviewer, reason string) error {
	if !s.authz.CanModerate(ctx, reviewer) {
		return ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyReason
	}
	dbc := dbctx.Context{Ctx: ctx}

	staged, err := s.staged.GetByID(dbc, stagedID)
	if err != nil {
		return err
	}
	if staged == nil {
		return fmt.Errorf("staged house %s: %w", stagedID, catalogrepo.ErrNotFound)
	}
	if staged.Status != types.StagedStatusPending {
		return fmt.Errorf("staged house %s is %s: %w", stagedID, staged.Status, ErrNotPending)
	}

	// Nothing was mutated, so no backup is created.
	if err := s.staged.SetStatus(dbc, stagedID, types.StagedStatusRejected, reviewer, time.Now().UTC(), &reason); err != nil {
		return writeErr(WriteStepStatus, err)
	}
	s.log.Info("staged house rejected", "staged_house_id", stagedID.String())
	return nil
}

func (s *reviewService) Undo(ctx context.Context, approvalID uuid.UUID, actor string) (*types.ApprovalRecord, error) {
	if !s.authz.CanModerate(ctx, actor) {
		return nil, ErrForbidden
	}
	dbc := dbctx.Context{Ctx: ctx}

	record, err := s.approvals.GetByID(dbc, approvalID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("approval %s: %w", approvalID, catalogrepo.ErrNotFound)
	}
	// Already undone: documented no-op, not an error and not a second
	// restore.
	if record.UndoneAt != nil {
		return record, nil
	}

	house, err := s.houses.GetByID(dbc, record.HouseID)
	if err != nil {
		return nil, err
	}
	if house == nil {
		// No partial undo when the house is gone.
		return nil, fmt.Errorf("house %s: %w", record.HouseID, catalogrepo.ErrNotFound)
	}

	// Full overwrite with the pre-image, not a merge.
	if err := s.houses.UpdateReconciledFields(dbc, house.ID, record.PreImage(), house.Revision); err != nil {
		return nil, writeErr(WriteStepCanonical, err)
	}

	now := time.Now().UTC()
	claimed, err := s.approvals.MarkUndone(dbc, record.ID, actor, now)
	if err != nil {
		return nil, writeErr(WriteStepLedger, err)
	}
	if !claimed {
		s.log.Warn("approval undone concurrently", "approval_id", record.ID.String())
	}
	record.UndoneAt = &now
	record.UndoneBy = &actor

	if err := s.staged.ResetToPending(dbc, record.StagedHouseID); err != nil {
		return nil, writeErr(WriteStepStatus, err)
	}

	s.log.Info("approval undone", "approval_id", record.ID.String(), "house_id", house.ID.String())
	return record, nil
}

func (s *reviewService) BulkApprove(ctx context.Context, stagedIDs []uuid.UUID, reviewer string) BulkResult {
	var result BulkResult
	// Strictly sequential: bounds store load and keeps per-item failure
	// accounting simple.
	for _, id := range stagedIDs {
		if _, err := s.Approve(ctx, id, reviewer); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, BulkFailure{StagedHouseID: id, Message: err.Error()})
			continue
		}
		result.Approved++
	}
	s.log.Info("bulk approval finished", "approved", result.Approved, "failed", result.Failed)
	return result
}

func (s *reviewService) RecentApprovals(ctx context.Context) ([]*types.ApprovalRecord, error) {
	since := time.Now().UTC().Add(-recentWindow)
	return s.approvals.GetRecent(dbctx.Context{Ctx: ctx}, since, true, recentPageSize)
}

// postImage derives the values an approval writes onto the house. Name,
// year, SKU and photo pass through; notes are synthesized from the scraped
// description plus series/retired metadata lines, and stay nil when there
// is no description.
func postImage(staged *types.StagedHouse) types.ReconciledFields {
	return types.ReconciledFields{
		Name:       staged.Name,
		Year:       staged.IntroYear,
		ItemNumber: staged.ItemNumber,
		Notes:      synthesizeNotes(staged),
		PhotoURL:   staged.PrimaryImageURL,
	}
}

func synthesizeNotes(staged *types.StagedHouse) *string {
	if staged.Description == nil || strings.TrimSpace(*staged.Description) == "" {
		return nil
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(*staged.Description))
	if staged.DiscoveredSeries != nil && strings.TrimSpace(*staged.DiscoveredSeries) != "" {
		b.WriteString("\n\nSeries: ")
		b.WriteString(strings.TrimSpace(*staged.DiscoveredSeries))
	}
	if staged.RetireYear != nil {
		b.WriteString("\nRetired: ")
		b.WriteString(strconv.Itoa(*staged.RetireYear))
	}
	notes := b.String()
	return &notes
}
