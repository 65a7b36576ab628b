package subscription

import (
	"context"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/models"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListAllSubscriptions is the admin-scoped paginated listing across all users.
type ListAllSubscriptions struct {
	repo domain.Repository
}

func NewListAllSubscriptions(repo domain.Repository) *ListAllSubscriptions {
	return &ListAllSubscriptions{repo: repo}
}

func (uc *ListAllSubscriptions) Execute(
	ctx context.Context,
	page int,
	limit int,
) ([]models.Subscription, int64, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	offset := (page - 1) * limit
	return uc.repo.ListAll(ctx, limit, offset)
}
