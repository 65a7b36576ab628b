package subscription

import (
	"context"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/models"
)

type GetSubscription struct {
	repo domain.Repository
}

func NewGetSubscription(repo domain.Repository) *GetSubscription {
	return &GetSubscription{repo: repo}
}

func (uc *GetSubscription) Execute(
	ctx context.Context,
	subscriptionID uint,
	userID uint,
) (*models.Subscription, error) {
	return uc.repo.GetForUser(ctx, subscriptionID, userID)
}
