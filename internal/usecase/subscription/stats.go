package subscription

import (
	"context"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
)

type GetSubscriptionStats struct {
	repo domain.Repository
}

func NewGetSubscriptionStats(repo domain.Repository) *GetSubscriptionStats {
	return &GetSubscriptionStats{repo: repo}
}

func (uc *GetSubscriptionStats) Execute(ctx context.Context) (*domain.Stats, error) {
	return uc.repo.GetStats(ctx)
}
