package subscription

import (
	"context"

	"github.com/seacatering/catering-api/internal/models"
)

// Stats aggregates subscription counts and revenue for the admin dashboard.
type Stats struct {
	TotalSubscriptions     int64   `json:"total_subscriptions"`
	TotalRevenue           float64 `json:"total_revenue"`
	ActiveSubscriptions    int64   `json:"active_subscriptions"`
	PausedSubscriptions    int64   `json:"paused_subscriptions"`
	CancelledSubscriptions int64   `json:"cancelled_subscriptions"`
}

type Repository interface {
	// -------- Plan --------
	GetActivePlan(
		ctx context.Context,
		planID uint,
	) (*models.MealPlan, error)

	// -------- Subscription (create) --------
	// CreateWithCap inserts the subscription only while the owner holds fewer
	// than maxActive active subscriptions. The count and the insert run as one
	// atomic step.
	CreateWithCap(
		ctx context.Context,
		sub *models.Subscription,
		maxActive int,
	) error

	// -------- Subscription (owner-scoped) --------
	GetForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Subscription, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Subscription, error)

	Update(
		ctx context.Context,
		sub *models.Subscription,
	) error

	// -------- Admin --------
	ListAll(
		ctx context.Context,
		limit int,
		offset int,
	) ([]models.Subscription, int64, error)

	GetStats(
		ctx context.Context,
	) (*Stats, error)
}
