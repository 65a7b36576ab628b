package subscription

import (
	"time"

	"github.com/seacatering/catering-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ChangeStatus moves a subscription to next, maintaining the pause-window
// invariant: paused has both bounds with end after start, every other status
// has none. Same-state changes are applied again (idempotent) but still
// validate the supplied fields.
func ChangeStatus(sub *models.Subscription, next Status, pausedStart, pausedEnd *time.Time) error {
	if err := CanTransition(Status(sub.Status), next); err != nil {
		return err
	}

	if next == StatusPaused {
		verr := &ValidationError{}
		if pausedStart == nil {
			verr.add("pausedStart", "pause start date is required")
		}
		if pausedEnd == nil {
			verr.add("pausedEnd", "pause end date is required")
		}
		if pausedStart != nil && pausedEnd != nil && !pausedEnd.After(*pausedStart) {
			verr.add("pausedEnd", "pause end date must be after start date")
		}
		if err := verr.orNil(); err != nil {
			return err
		}

		sub.Status = string(StatusPaused)
		sub.PausedStart = pausedStart
		sub.PausedEnd = pausedEnd
		return nil
	}

	sub.Status = string(next)
	sub.PausedStart = nil
	sub.PausedEnd = nil
	return nil
}
