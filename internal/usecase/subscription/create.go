package subscription

import (
	"context"

	"github.com/seacatering/catering-api/internal/audit"
	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSubscriptionInput struct {
	UserID uint

	Name        string
	PhoneNumber string
	PlanID      uint

	MealTypes    []string
	DeliveryDays []string
	Allergies    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSubscription struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSubscription(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSubscription {
	return &CreateSubscription{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSubscription) Execute(
	ctx context.Context,
	in CreateSubscriptionInput,
) (*models.Subscription, error) {

	req := domain.CreateRequest{
		Name:         in.Name,
		PhoneNumber:  in.PhoneNumber,
		PlanID:       in.PlanID,
		MealTypes:    in.MealTypes,
		DeliveryDays: in.DeliveryDays,
		Allergies:    in.Allergies,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Plan must exist and be active. Retired plans are not purchasable even
	// though old subscriptions still reference them.
	plan, err := uc.repo.GetActivePlan(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		UserID:       in.UserID,
		PlanID:       plan.ID,
		Name:         domain.Sanitize(in.Name),
		PhoneNumber:  in.PhoneNumber,
		MealTypes:    in.MealTypes,
		DeliveryDays: in.DeliveryDays,
		Allergies:    domain.Sanitize(in.Allergies),
		TotalPrice:   domain.Price(plan.Price, len(in.MealTypes), len(in.DeliveryDays)),
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateWithCap(ctx, sub, domain.MaxActivePerUser); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "subscription_created",
		Entity:   "subscription",
		EntityID: &sub.ID,
		Metadata: map[string]any{"plan_id": plan.ID, "total_price": sub.TotalPrice},
	})

	return sub, nil
}
