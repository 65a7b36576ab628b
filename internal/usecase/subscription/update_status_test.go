package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/seacatering/catering-api/internal/domain/subscription"
	"github.com/seacatering/catering-api/internal/httperr"
	"github.com/seacatering/catering-api/internal/models"
)

func ownedSub() *models.Subscription {
	return &models.Subscription{
		ID:     10,
		UserID: 7,
		Status: string(domain.StatusActive),
	}
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	t.Run("pause stores the window", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetForUser", mock.Anything, uint(10), uint(7)).Return(ownedSub(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Subscription")).Return(nil)

		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		sub, err := uc.Execute(context.Background(), UpdateStatusInput{
			UserID:         7,
			SubscriptionID: 10,
			Status:         "paused",
			PausedStart:    &start,
			PausedEnd:      &end,
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPaused), sub.Status)
		require.NotNil(t, sub.PausedStart)
		require.NotNil(t, sub.PausedEnd)
		repo.AssertExpectations(t)
	})

	t.Run("invalid pause window leaves the row untouched", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetForUser", mock.Anything, uint(10), uint(7)).Return(ownedSub(), nil)

		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		same := start
		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			UserID:         7,
			SubscriptionID: 10,
			Status:         "paused",
			PausedStart:    &start,
			PausedEnd:      &same,
		})
		require.Error(t, err)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("cancel clears pause bounds", func(t *testing.T) {
		paused := ownedSub()
		paused.Status = string(domain.StatusPaused)
		paused.PausedStart = &start
		paused.PausedEnd = &end

		repo := new(MockRepository)
		repo.On("GetForUser", mock.Anything, uint(10), uint(7)).Return(paused, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Subscription")).Return(nil)

		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		sub, err := uc.Execute(context.Background(), UpdateStatusInput{
			UserID:         7,
			SubscriptionID: 10,
			Status:         "cancelled",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), sub.Status)
		assert.Nil(t, sub.PausedStart)
		assert.Nil(t, sub.PausedEnd)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := new(MockRepository)
		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			UserID:         7,
			SubscriptionID: 10,
			Status:         "frozen",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
		repo.AssertNotCalled(t, "GetForUser")
	})

	t.Run("another user's subscription looks absent", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetForUser", mock.Anything, uint(10), uint(99)).
			Return(nil, httperr.ErrBusiness("subscription_not_found"))

		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			UserID:         99,
			SubscriptionID: 10,
			Status:         "cancelled",
		})
		assert.True(t, httperr.IsBusiness(err, "subscription_not_found"))
	})

	t.Run("same-state update is idempotent", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetForUser", mock.Anything, uint(10), uint(7)).Return(ownedSub(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Subscription")).Return(nil)

		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		for i := 0; i < 2; i++ {
			sub, err := uc.Execute(context.Background(), UpdateStatusInput{
				UserID:         7,
				SubscriptionID: 10,
				Status:         "active",
			})
			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusActive), sub.Status)
		}
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		cancelled := ownedSub()
		cancelled.Status = string(domain.StatusCancelled)

		repo := new(MockRepository)
		repo.On("GetForUser", mock.Anything, uint(10), uint(7)).Return(cancelled, nil)

		uc := NewUpdateSubscriptionStatus(repo, testDispatcher(t))

		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			UserID:         7,
			SubscriptionID: 10,
			Status:         "active",
		})
		assert.True(t, httperr.IsBusiness(err, "subscription_cancelled"))
		repo.AssertNotCalled(t, "Update")
	})
}
