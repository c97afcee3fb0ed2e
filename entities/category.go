package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Icon         string    `json:"icon,omitempty"` // emoji shown on category cards
	ImageURL     string    `json:"image_url,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	GradientFrom string    `gorm:"default:blue-500" json:"gradient_from"`
	GradientTo   string    `gorm:"default:purple-500" json:"gradient_to"`
	Order        int       `gorm:"column:display_order;default:0" json:"order"`

	Recipes []Recipe `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}
