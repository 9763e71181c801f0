package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrApply marks a failed apply step. The surrounding transaction was rolled back.
	ErrApply = errors.New("apply failed")

	// ErrDuplicateID is returned by Txn.Insert when the id is already persisted.
	ErrDuplicateID = errors.New("duplicate place id")

	// ErrUnknownID is returned by Txn writes that matched no row.
	ErrUnknownID = errors.New("unknown place id")

	// ErrDuplicateElement is returned when a fresh snapshot carries the same id twice.
	ErrDuplicateElement = errors.New("duplicate element id")
)

// ApplyError describes the action whose write failed.
type ApplyError struct {
	Action Action
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s of place %d failed: %v", e.Action.Type, e.Action.ID, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Is makes every ApplyError match ErrApply in addition to its wrapped cause.
func (e *ApplyError) Is(target error) bool {
	return target == ErrApply
}
