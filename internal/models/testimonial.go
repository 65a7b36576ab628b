package models

import "time"

type Testimonial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	Rating        int    `gorm:"not null" json:"rating"`
	ReviewMessage string `gorm:"type:text;not null" json:"review_message"`

	IsApproved bool `gorm:"default:true" json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
