package services

import (
	"context"
	"errors"
	"fmt"
)

// Validation failures, rejected before any store write.
var (
	// ErrNoLinkedHouse: the staged house has no linked canonical house.
	// Creating a brand-new house from a staged record is not supported.
	ErrNoLinkedHouse = errors.New("staged house has no linked house")
	// ErrEmptyReason: rejections require a moderator reason.
	ErrEmptyReason = errors.New("a rejection reason is required")
	// ErrNotPending: the staged house already left the pending state this
	// review cycle.
	ErrNotPending = errors.New("staged house is not pending")
	// ErrForbidden: the acting identity is not allowed to moderate.
	ErrForbidden = errors.New("not authorized to moderate")
)

// WriteStep identifies which remote write of a reconciliation transition
// failed, so callers can tell whether canonical data may be in an
// intermediate state.
type WriteStep string

const (
	// WriteStepBackup: the approval-history insert. Nothing has been
	// mutated yet when this fails.
	WriteStepBackup WriteStep = "backup"
	// WriteStepCanonical: the house update. The backup row exists.
	WriteStepCanonical WriteStep = "canonical_update"
	// WriteStepStatus: the staged-house status flip. The house has been
	// updated.
	WriteStepStatus WriteStep = "status_update"
	// WriteStepLedger: stamping undo metadata on the approval record.
	WriteStepLedger WriteStep = "ledger_update"
)

// WriteError wraps a store failure with the step it happened in.
type WriteError struct {
	Step WriteStep
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed at %s: %v", e.Step, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func writeErr(step WriteStep, err error) error {
	return &WriteError{Step: step, Err: err}
}

// Authorizer is the injected capability deciding who may run moderation
// actions. The concrete policy (an allow-list, a role claim) lives with the
// caller, never inside the engine.
type Authorizer interface {
	CanModerate(ctx context.Context, identity string) bool
}

// AllowAll authorizes everyone. Useful for tests and single-user setups.
type AllowAll struct{}

func (AllowAll) CanModerate(context.Context, string) bool { return true }
