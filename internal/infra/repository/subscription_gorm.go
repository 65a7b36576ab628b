package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

// --------------------------------------------------
// Plan
// --------------------------------------------------

func (r *SubscriptionGormRepository) GetActivePlan(
	ctx context.Context,
	planID uint,
) (*models.MealPlan, error) {

	var plan models.MealPlan
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", planID, true).
		First(&plan).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("plan_not_found")
		}
		return nil, err
	}

	return &plan, nil
}

// --------------------------------------------------
// Create (atomic cap check)
// --------------------------------------------------

// CreateWithCap locks the owner's user row for the duration of the
// transaction, so two concurrent creates for the same user serialize on the
// count check and the cap cannot be overshot.
func (r *SubscriptionGormRepository) CreateWithCap(
	ctx context.Context,
	sub *models.Subscription,
	maxActive int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, sub.UserID).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusiness("user_not_found")
			}
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Subscription{}).
			Where("user_id = ? AND status = ?", sub.UserID, string(domain.StatusActive)).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= int64(maxActive) {
			return httperr.ErrBusiness("subscription_limit_reached")
		}

		return tx.Create(sub).Error
	})
}

// --------------------------------------------------
// Owner-scoped reads / writes
// --------------------------------------------------

func (r *SubscriptionGormRepository) GetForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&sub).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("subscription_not_found")
		}
		return nil, err
	}

	return &sub, nil
}

func (r *SubscriptionGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Subscription, error) {

	var subs []models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *SubscriptionGormRepository) Update(
	ctx context.Context,
	sub *models.Subscription,
) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *SubscriptionGormRepository) ListAll(
	ctx context.Context,
	limit int,
	offset int,
) ([]models.Subscription, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []models.Subscription
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error

	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

func (r *SubscriptionGormRepository) GetStats(
	ctx context.Context,
) (*domain.Stats, error) {

	var stats domain.Stats
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Select(`
			COUNT(*) AS total_subscriptions,
			COALESCE(SUM(total_price), 0) AS total_revenue,
			COUNT(CASE WHEN status = 'active' THEN 1 END) AS active_subscriptions,
			COUNT(CASE WHEN status = 'paused' THEN 1 END) AS paused_subscriptions,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_subscriptions
		`).
		Scan(&stats).Error

	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// Compile-time check
var _ domain.Repository = (*SubscriptionGormRepository)(nil)
