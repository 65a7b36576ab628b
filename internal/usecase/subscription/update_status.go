package subscription

import (
	"context"
	"time"

	"github.com/seacatering/catering-api/internal/audit"
	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	UserID         uint
	SubscriptionID uint

	Status      string
	PausedStart *time.Time
	PausedEnd   *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSubscriptionStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSubscriptionStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSubscriptionStatus {
	return &UpdateSubscriptionStatus{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateSubscriptionStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Subscription, error) {

	next, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// Owner-scoped lookup: a subscription owned by someone else looks absent.
	sub, err := uc.repo.GetForUser(ctx, in.SubscriptionID, in.UserID)
	if err != nil {
		return nil, err
	}

	if err := domain.ChangeStatus(sub, next, in.PausedStart, in.PausedEnd); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "subscription_" + string(next),
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
