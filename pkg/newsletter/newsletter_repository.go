package newsletter

import (
	"context"

	"recipe-hub-backend/entities"

	"gorm.io/gorm"
)

type (
	NewsletterRepository interface {
		CreateSubscription(ctx context.Context, subscription *entities.NewsletterSubscription) error
		UpdateSubscription(ctx context.Context, subscription *entities.NewsletterSubscription) error
		GetSubscriptionByEmail(ctx context.Context, email string) (*entities.NewsletterSubscription, error)
		CountActiveSubscriptions(ctx context.Context) (int64, error)
	}

	newsletterRepository struct {
		db *gorm.DB
	}
)

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) CreateSubscription(ctx context.Context, subscription *entities.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *newsletterRepository) UpdateSubscription(ctx context.Context, subscription *entities.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *newsletterRepository) GetSubscriptionByEmail(ctx context.Context, email string) (*entities.NewsletterSubscription, error) {
	var subscription entities.NewsletterSubscription
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *newsletterRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.NewsletterSubscription{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
