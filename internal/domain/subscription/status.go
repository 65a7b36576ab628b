package subscription

import "github.com/seacatering/catering-api/internal/httperr"

// ===============================
// Subscription Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusPaused, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// ===============================
// Transitions
// ===============================

// CanTransition allows any move between active and paused, cancellation from
// either, and same-state updates (idempotent). Cancelled is terminal.
func CanTransition(current, next Status) error {
	if current == next {
		return nil
	}
	if current == StatusCancelled {
		return httperr.ErrBusiness("subscription_cancelled")
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
