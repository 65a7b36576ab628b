package subscription

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/models"
)

// MockRepository implements domain/subscription.Repository for use case tests.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActivePlan(ctx context.Context, planID uint) (*models.MealPlan, error) {
	args := m.Called(ctx, planID)
	if plan := args.Get(0); plan != nil {
		return plan.(*models.MealPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CreateWithCap(ctx context.Context, sub *models.Subscription, maxActive int) error {
	args := m.Called(ctx, sub, maxActive)
	if args.Error(0) == nil {
		sub.ID = 42
	}
	return args.Error(0)
}

func (m *MockRepository) GetForUser(ctx context.Context, id, userID uint) (*models.Subscription, error) {
	args := m.Called(ctx, id, userID)
	if sub := args.Get(0); sub != nil {
		return sub.(*models.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListForUser(ctx context.Context, userID uint) ([]models.Subscription, error) {
	args := m.Called(ctx, userID)
	if subs := args.Get(0); subs != nil {
		return subs.([]models.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, sub *models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Subscription, int64, error) {
	args := m.Called(ctx, limit, offset)
	if subs := args.Get(0); subs != nil {
		return subs.([]models.Subscription), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ domain.Repository = (*MockRepository)(nil)
