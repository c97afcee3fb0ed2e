package about

import (
	"context"
	"testing"
	"time"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/pkg/category"
	"recipe-hub-backend/pkg/newsletter"
	"recipe-hub-backend/pkg/recipe"
	"recipe-hub-backend/pkg/review"

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

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Review{},
		&entities.NewsletterSubscription{},
		&entities.AboutPage{},
		&entities.CoreValue{},
		&entities.TeamMember{},
	))
	return db
}

func newAboutService(db *gorm.DB) AboutService {
	return NewAboutService(
		NewAboutRepository(db),
		newsletter.NewNewsletterRepository(db),
		recipe.NewRecipeRepository(db),
		review.NewReviewRepository(db),
		category.NewCategoryRepository(db),
	)
}

func TestGetAboutStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newAboutService(db)
	ctx := context.Background()

	now := time.Now()
	cat := &entities.Category{ID: uuid.New(), Name: "Dinner"}
	require.NoError(t, db.Create(cat).Error)

	require.NoError(t, db.Create(&entities.Recipe{
		ID: uuid.New(), AuthorID: uuid.New(), CategoryID: cat.ID,
		Title: "active", Status: entities.RecipeStatusActive, PublishedAt: &now,
	}).Error)
	require.NoError(t, db.Create(&entities.Recipe{
		ID: uuid.New(), AuthorID: uuid.New(), CategoryID: cat.ID,
		Title: "inactive", Status: entities.RecipeStatusInactive, PublishedAt: &now,
	}).Error)

	require.NoError(t, db.Create(&entities.NewsletterSubscription{ID: uuid.New(), Email: "a@x.com", IsActive: true}).Error)
	require.NoError(t, db.Create(&entities.NewsletterSubscription{ID: uuid.New(), Email: "b@x.com", IsActive: false}).Error)

	require.NoError(t, db.Create(&entities.Review{ID: uuid.New(), RecipeID: uuid.New(), Rating: 5, IsApproved: true}).Error)
	require.NoError(t, db.Create(&entities.Review{ID: uuid.New(), RecipeID: uuid.New(), Rating: 3, IsApproved: false}).Error)

	res, err := svc.GetAbout(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Stats.ActiveSubscribers)
	assert.Equal(t, int64(1), res.Stats.ActiveRecipes)
	assert.Equal(t, int64(1), res.Stats.ApprovedReviews)
	assert.Equal(t, int64(1), res.Stats.Categories)
	assert.Nil(t, res.About, "no about row configured yet")
}

func TestGetAboutContentOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := newAboutService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&entities.CoreValue{ID: uuid.New(), Title: "Second", Order: 2}).Error)
	require.NoError(t, db.Create(&entities.CoreValue{ID: uuid.New(), Title: "First", Order: 1}).Error)
	require.NoError(t, db.Create(&entities.TeamMember{ID: uuid.New(), Name: "B", Order: 2}).Error)
	require.NoError(t, db.Create(&entities.TeamMember{ID: uuid.New(), Name: "A", Order: 1}).Error)

	res, err := svc.GetAbout(ctx)
	require.NoError(t, err)

	require.Len(t, res.CoreValues, 2)
	assert.Equal(t, "First", res.CoreValues[0].Title)
	require.Len(t, res.Team, 2)
	assert.Equal(t, "A", res.Team[0].Name)
}

func TestUpsertAboutKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newAboutService(db)
	ctx := context.Background()

	require.NoError(t, svc.UpsertAbout(ctx, domain.UpsertAboutRequest{Title: "About us", Mission: "cook"}))
	require.NoError(t, svc.UpsertAbout(ctx, domain.UpsertAboutRequest{Title: "About us v2", Mission: "cook better"}))

	var count int64
	require.NoError(t, db.Model(&entities.AboutPage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	res, err := svc.GetAbout(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.About)
	assert.Equal(t, "About us v2", res.About.Title)
}
