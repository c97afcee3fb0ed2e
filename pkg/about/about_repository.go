package about

import (
	"context"

	"recipe-hub-backend/entities"

	"gorm.io/gorm"
)

type (
	AboutRepository interface {
		GetAboutPage(ctx context.Context) (*entities.AboutPage, error)
		UpsertAboutPage(ctx context.Context, page *entities.AboutPage) error
		GetCoreValues(ctx context.Context) ([]*entities.CoreValue, error)
		GetTeamMembers(ctx context.Context) ([]*entities.TeamMember, error)
	}

	aboutRepository struct {
		db *gorm.DB
	}
)

func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) GetAboutPage(ctx context.Context) (*entities.AboutPage, error) {
	var page entities.AboutPage
	if err := r.db.WithContext(ctx).Order("id").First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// UpsertAboutPage keeps the about table at a single row: the first write
// creates it, every later write updates it in place.
func (r *aboutRepository) UpsertAboutPage(ctx context.Context, page *entities.AboutPage) error {
	var existing entities.AboutPage
	err := r.db.WithContext(ctx).Order("id").First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.WithContext(ctx).Create(page).Error
		}
		return err
	}

	existing.Title = page.Title
	existing.Mission = page.Mission
	existing.Story = page.Story
	if page.ImageURL != "" {
		existing.ImageURL = page.ImageURL
	}
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *aboutRepository) GetCoreValues(ctx context.Context) ([]*entities.CoreValue, error) {
	var values []*entities.CoreValue
	if err := r.db.WithContext(ctx).Order("display_order").Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (r *aboutRepository) GetTeamMembers(ctx context.Context) ([]*entities.TeamMember, error) {
	var members []*entities.TeamMember
	if err := r.db.WithContext(ctx).Order("display_order").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
