package entities

import (
	"github.com/google/uuid"
)

type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Subject string    `json:"subject,omitempty"`
	Message string    `gorm:"type:text;not null" json:"message"`
	IsRead  bool      `gorm:"default:false" json:"is_read"`

	Timestamp
}
