package review

import (
	"context"
	"testing"
	"time"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/pkg/recipe"

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
	))
	return db
}

func seedVisibleRecipe(t *testing.T, db *gorm.DB) *entities.Recipe {
	t.Helper()
	now := time.Now()
	cat := &entities.Category{ID: uuid.New(), Name: "Dinner"}
	require.NoError(t, db.Create(cat).Error)

	rec := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    uuid.New(),
		CategoryID:  cat.ID,
		Title:       "lasagna",
		Status:      entities.RecipeStatusActive,
		PublishedAt: &now,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

func TestSubmitReview(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := recipe.NewRecipeRepository(db)
	svc := NewReviewService(NewReviewRepository(db), recipeRepo)
	ctx := context.Background()

	rec := seedVisibleRecipe(t, db)

	res, err := svc.SubmitReview(ctx, rec.ID.String(), domain.SubmitReviewRequest{
		Name:    "Ana",
		Rating:  4,
		Comment: "great",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, rec.ID.String(), res.RecipeID)

	// unapproved reviews stay off the recipe page
	approved, err := recipeRepo.GetApprovedReviews(ctx, rec.ID.String())
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestSubmitReviewInvalid(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := recipe.NewRecipeRepository(db)
	svc := NewReviewService(NewReviewRepository(db), recipeRepo)
	ctx := context.Background()

	rec := seedVisibleRecipe(t, db)

	_, err := svc.SubmitReview(ctx, rec.ID.String(), domain.SubmitReviewRequest{Rating: 0}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.SubmitReview(ctx, rec.ID.String(), domain.SubmitReviewRequest{Rating: 6}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.SubmitReview(ctx, uuid.NewString(), domain.SubmitReviewRequest{Rating: 3}, "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestApproveReviewUpdatesRating(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := recipe.NewRecipeRepository(db)
	svc := NewReviewService(NewReviewRepository(db), recipeRepo)
	ctx := context.Background()

	rec := seedVisibleRecipe(t, db)

	first, err := svc.SubmitReview(ctx, rec.ID.String(), domain.SubmitReviewRequest{Rating: 5}, "")
	require.NoError(t, err)
	second, err := svc.SubmitReview(ctx, rec.ID.String(), domain.SubmitReviewRequest{Rating: 2}, "")
	require.NoError(t, err)

	require.NoError(t, svc.ApproveReview(ctx, first.ID))

	got, err := recipeRepo.GetRecipeByID(ctx, rec.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got.Rating, 0.001)

	require.NoError(t, svc.ApproveReview(ctx, second.ID))

	got, err = recipeRepo.GetRecipeByID(ctx, rec.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.Rating, 0.001)

	approved, err := recipeRepo.GetApprovedReviews(ctx, rec.ID.String())
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	err = svc.ApproveReview(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}
