package lifecycle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/hireflow/internal/types"
)

// ErrInvalidTransition indicates a status change not permitted from the
// current state, including any attempt to leave a terminal state or to move
// to an unrecognized status. The entity is never mutated when this is
// returned.
type ErrInvalidTransition struct {
	From types.Status
	To   types.Status
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// ErrForbidden indicates an operation restricted to a specific actor was
// invoked by someone else.
type ErrForbidden struct {
	UserID uuid.UUID
	Action string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("user %s is not allowed to %s this application", e.UserID, e.Action)
}

// ErrValidation indicates a malformed operation argument
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
