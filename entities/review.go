package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uuid.UUID  `gorm:"index;not null" json:"recipe_id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Name       string     `json:"name,omitempty"` // display name for anonymous reviewers
	Rating     int        `gorm:"not null" json:"rating"`
	Comment    string     `gorm:"type:text" json:"comment,omitempty"`
	IsApproved bool       `gorm:"default:false;index" json:"is_approved"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
