package entities

import (
	"github.com/google/uuid"
)

type NewsletterSubscription struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
