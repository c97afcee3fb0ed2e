package contact

import (
	"context"
	"testing"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"

	"github.com/google/uuid"
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

	require.NoError(t, db.AutoMigrate(&entities.Contact{}))
	return db
}

func TestSubmitContact(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(NewContactRepository(db))
	ctx := context.Background()

	res, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
		Name:    "Jamie",
		Email:   "jamie@x.com",
		Phone:   "+19998887777",
		Subject: "Hello",
		Message: "Loved the lasagna recipe.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	var stored entities.Contact
	require.NoError(t, db.Where("email = ?", "jamie@x.com").First(&stored).Error)
	assert.Equal(t, "Jamie", stored.Name)
	assert.False(t, stored.IsRead)
}

func TestMarkAsRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(NewContactRepository(db))
	ctx := context.Background()

	res, err := svc.SubmitContact(ctx, domain.SubmitContactRequest{
		Name:    "Jamie",
		Email:   "jamie@x.com",
		Message: "hi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, res.ID))

	var stored entities.Contact
	require.NoError(t, db.Where("id = ?", res.ID).First(&stored).Error)
	assert.True(t, stored.IsRead)

	err = svc.MarkAsRead(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}
