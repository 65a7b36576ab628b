package models

import "time"

type MealPlan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Price       float64  `gorm:"not null" json:"price"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Features    []string `gorm:"serializer:json" json:"features"`
	Icon        string   `gorm:"size:10;default:'🍽️'" json:"icon"`

	// Retired plans stay in place: historical subscriptions reference them.
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
