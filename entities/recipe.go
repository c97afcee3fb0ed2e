package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RecipeStatusActive   = "active"
	RecipeStatusInactive = "inactive"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	CategoryID  uuid.UUID `gorm:"index" json:"category_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Content     string    `gorm:"type:text" json:"content,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `gorm:"default:active;index" json:"status"` // "active", "inactive"

	PrepTimeMinutes int    `json:"prep_time_minutes"`
	CookTimeMinutes int    `json:"cook_time_minutes"`
	Servings        int    `gorm:"default:4" json:"servings"`
	Difficulty      string `gorm:"default:medium" json:"difficulty"` // "easy", "medium", "hard"

	ViewsCount int64   `gorm:"default:0" json:"views_count"`
	LikesCount int64   `gorm:"default:0" json:"likes_count"`
	Rating     float64 `gorm:"default:0" json:"rating"`

	IsTrending bool `gorm:"default:false" json:"is_trending"`
	IsFeatured bool `gorm:"default:false" json:"is_featured"`

	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}

// TotalTimeMinutes is derived, never stored.
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// IsVisible reports whether readers may see the recipe.
func (r *Recipe) IsVisible() bool {
	return r.PublishedAt != nil && r.Status == RecipeStatusActive
}
