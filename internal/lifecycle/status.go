// Package lifecycle implements the application state machine. Every status
// change flows through the operations here, which validate the transition,
// mutate the entity, and append audit-trail entries.
//
// Valid status graph:
//
//	pending ──► reviewed ──► shortlisted ──► interview ──► accepted
//	    │            │             │              │
//	    └────────────┴─────────────┴──────────────┴──► rejected / withdrawn
//
// (pending may also jump directly to any later state; accepted, rejected, and
// withdrawn are terminal.)
package lifecycle

import "github.com/jonathan/hireflow/internal/types"

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[types.Status][]types.Status{
	types.StatusPending: {
		types.StatusReviewed, types.StatusShortlisted, types.StatusInterview,
		types.StatusAccepted, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusReviewed: {
		types.StatusShortlisted, types.StatusInterview,
		types.StatusAccepted, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusShortlisted: {
		types.StatusInterview, types.StatusAccepted, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusInterview: {
		types.StatusAccepted, types.StatusRejected, types.StatusWithdrawn,
	},
	// accepted, rejected, and withdrawn are terminal: no outgoing transitions
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to types.Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses with no outgoing transitions.
func IsTerminal(s types.Status) bool {
	return s == types.StatusAccepted || s == types.StatusRejected || s == types.StatusWithdrawn
}
