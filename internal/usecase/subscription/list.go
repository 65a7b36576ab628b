package subscription

import (
	"context"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/models"
)

type ListUserSubscriptions struct {
	repo domain.Repository
}

func NewListUserSubscriptions(repo domain.Repository) *ListUserSubscriptions {
	return &ListUserSubscriptions{repo: repo}
}

func (uc *ListUserSubscriptions) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Subscription, error) {
	return uc.repo.ListForUser(ctx, userID)
}
