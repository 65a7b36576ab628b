package dto

import (
	"time"

	"github.com/seacatering/catering-api/internal/models"
)

// SubscriptionListDTO is the trimmed row for the admin listing: no allergy
// notes or meal configuration, just what the table shows.
type SubscriptionListDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	PlanID      uint      `json:"plan_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSubscription(sub *models.Subscription) SubscriptionListDTO {
	return SubscriptionListDTO{
		ID:          sub.ID,
		UserID:      sub.UserID,
		PlanID:      sub.PlanID,
		Name:        sub.Name,
		PhoneNumber: sub.PhoneNumber,
		TotalPrice:  sub.TotalPrice,
		Status:      sub.Status,
		CreatedAt:   sub.CreatedAt,
	}
}
