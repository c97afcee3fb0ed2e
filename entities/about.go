package entities

import (
	"github.com/google/uuid"
)

// AboutPage holds the editable about-page copy. The repository keeps the
// table at a single row.
type AboutPage struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Mission  string    `gorm:"type:text" json:"mission,omitempty"`
	Story    string    `gorm:"type:text" json:"story,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`

	Timestamp
}

type CoreValue struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`

	Timestamp
}

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Role     string    `json:"role,omitempty"`
	Bio      string    `gorm:"type:text" json:"bio,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Order    int       `gorm:"column:display_order;default:0" json:"order"`

	Timestamp
}
