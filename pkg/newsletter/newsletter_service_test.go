package newsletter

import (
	"context"
	"testing"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.NewsletterSubscription{}))
	return db
}

func TestSubscribe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsletterService(NewNewsletterRepository(db))
	ctx := context.Background()

	res, err := svc.Subscribe(ctx, domain.SubscribeRequest{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", res.Email)
	assert.True(t, res.IsActive)

	_, err = svc.Subscribe(ctx, domain.SubscribeRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadySubscribed)

	var count int64
	require.NoError(t, db.Model(&entities.NewsletterSubscription{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count, "duplicate subscribe writes nothing")
}

func TestUnsubscribeAndResubscribe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsletterService(NewNewsletterRepository(db))
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, domain.SubscribeRequest{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, domain.SubscribeRequest{Email: "a@x.com"}))

	var sub entities.NewsletterSubscription
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&sub).Error)
	assert.False(t, sub.IsActive)

	// coming back reactivates the existing row
	res, err := svc.Subscribe(ctx, domain.SubscribeRequest{Email: "a@x.com"})
	require.NoError(t, err)
	assert.True(t, res.IsActive)

	var count int64
	require.NoError(t, db.Model(&entities.NewsletterSubscription{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsletterService(NewNewsletterRepository(db))

	err := svc.Unsubscribe(context.Background(), domain.SubscribeRequest{Email: "nobody@x.com"})
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}
