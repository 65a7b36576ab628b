package models

import "time"

// UserID and PlanID are plain references on purpose: the schema declares no
// foreign keys so tables can be created in any order. The application layer
// enforces both links. userId/planId never change after creation.
type Subscription struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	PlanID uint `gorm:"not null" json:"plan_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`

	MealTypes    []string `gorm:"serializer:json;not null" json:"meal_types"`
	DeliveryDays []string `gorm:"serializer:json;not null" json:"delivery_days"`
	Allergies    string   `gorm:"type:text" json:"allergies"`

	TotalPrice float64 `gorm:"not null" json:"total_price"`
	Status     string  `gorm:"size:20;default:'active'" json:"status"`

	PausedStart *time.Time `json:"paused_start"`
	PausedEnd   *time.Time `json:"paused_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
