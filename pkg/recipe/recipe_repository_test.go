package recipe

import (
	"context"
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Review{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	t.Helper()
	cat := &entities.Category{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func seedRecipe(t *testing.T, db *gorm.DB, categoryID uuid.UUID, title string, publishedAt *time.Time, status string, trending bool) *entities.Recipe {
	t.Helper()
	rec := &entities.Recipe{
		ID:              uuid.New(),
		AuthorID:        uuid.New(),
		CategoryID:      categoryID,
		Title:           title,
		Status:          status,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        4,
		Difficulty:      entities.DifficultyMedium,
		IsTrending:      trending,
		PublishedAt:     publishedAt,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

func ptrTime(tm time.Time) *time.Time { return &tm }

func TestGetTrendingRecipes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Desserts")
	now := time.Now()

	oldest := seedRecipe(t, db, cat.ID, "oldest", ptrTime(now.Add(-3*time.Hour)), entities.RecipeStatusActive, true)
	newest := seedRecipe(t, db, cat.ID, "newest", ptrTime(now), entities.RecipeStatusActive, true)
	middle := seedRecipe(t, db, cat.ID, "middle", ptrTime(now.Add(-1*time.Hour)), entities.RecipeStatusActive, true)

	// none of these may surface
	seedRecipe(t, db, cat.ID, "draft", nil, entities.RecipeStatusActive, true)
	seedRecipe(t, db, cat.ID, "inactive", ptrTime(now), entities.RecipeStatusInactive, true)
	seedRecipe(t, db, cat.ID, "not trending", ptrTime(now), entities.RecipeStatusActive, false)

	recipes, err := repo.GetTrendingRecipes(ctx, 6)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, newest.ID, recipes[0].ID)
	assert.Equal(t, middle.ID, recipes[1].ID)
	assert.Equal(t, oldest.ID, recipes[2].ID)

	limited, err := repo.GetTrendingRecipes(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetRelatedRecipes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Soups")
	other := seedCategory(t, db, "Salads")
	now := time.Now()

	current := seedRecipe(t, db, cat.ID, "current", ptrTime(now), entities.RecipeStatusActive, false)
	sibling := seedRecipe(t, db, cat.ID, "sibling", ptrTime(now.Add(-time.Hour)), entities.RecipeStatusActive, false)
	seedRecipe(t, db, other.ID, "other category", ptrTime(now), entities.RecipeStatusActive, false)
	seedRecipe(t, db, cat.ID, "unpublished sibling", nil, entities.RecipeStatusActive, false)

	related, err := repo.GetRelatedRecipes(ctx, cat.ID.String(), current.ID.String(), 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, sibling.ID, related[0].ID)
	for _, r := range related {
		assert.NotEqual(t, current.ID, r.ID)
		assert.Equal(t, cat.ID, r.CategoryID)
	}
}

func TestIncrementViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Breakfast")
	rec := seedRecipe(t, db, cat.ID, "pancakes", ptrTime(time.Now()), entities.RecipeStatusActive, false)

	const k = 25
	for i := 0; i < k; i++ {
		require.NoError(t, repo.IncrementViews(ctx, rec.ID.String()))
	}

	got, err := repo.GetRecipeByID(ctx, rec.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(k), got.ViewsCount)
}

func TestIncrementViewsHiddenRecipe(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Breakfast")
	hidden := seedRecipe(t, db, cat.ID, "hidden", ptrTime(time.Now()), entities.RecipeStatusInactive, false)

	err := repo.IncrementViews(ctx, hidden.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.IncrementViews(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetVisibleRecipeByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	visible := seedRecipe(t, db, cat.ID, "visible", ptrTime(time.Now()), entities.RecipeStatusActive, false)
	inactive := seedRecipe(t, db, cat.ID, "inactive", ptrTime(time.Now()), entities.RecipeStatusInactive, false)
	draft := seedRecipe(t, db, cat.ID, "draft", nil, entities.RecipeStatusActive, false)

	got, err := repo.GetVisibleRecipeByID(ctx, visible.ID.String())
	require.NoError(t, err)
	assert.Equal(t, visible.ID, got.ID)

	_, err = repo.GetVisibleRecipeByID(ctx, inactive.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetVisibleRecipeByID(ctx, draft.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetRecipesByCategoryPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	now := time.Now()
	for i := 0; i < 5; i++ {
		seedRecipe(t, db, cat.ID, "recipe", ptrTime(now.Add(-time.Duration(i)*time.Hour)), entities.RecipeStatusActive, false)
	}
	seedRecipe(t, db, cat.ID, "unpublished", nil, entities.RecipeStatusActive, false)

	page1, count, err := repo.GetRecipesByCategory(ctx, cat.ID.String(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Len(t, page1, 2)

	page3, _, err := repo.GetRecipesByCategory(ctx, cat.ID.String(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestSearchRecipes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	now := time.Now()

	match := seedRecipe(t, db, cat.ID, "Spicy Chicken Curry", ptrTime(now), entities.RecipeStatusActive, false)
	inDescription := seedRecipe(t, db, cat.ID, "Weeknight bowl", ptrTime(now.Add(-time.Hour)), entities.RecipeStatusActive, false)
	require.NoError(t, db.Model(inDescription).Update("description", "a mild CHICKEN dish").Error)
	seedRecipe(t, db, cat.ID, "Beef stew", ptrTime(now), entities.RecipeStatusActive, false)

	hidden := seedRecipe(t, db, cat.ID, "Hidden chicken", ptrTime(now), entities.RecipeStatusInactive, false)
	_ = hidden

	results, count, err := repo.SearchRecipes(ctx, "chicken", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, results, 2)
	assert.Equal(t, match.ID, results[0].ID)
	assert.Equal(t, inDescription.ID, results[1].ID)
}

func TestTotalTimeDerived(t *testing.T) {
	rec := &entities.Recipe{PrepTimeMinutes: 15, CookTimeMinutes: 45}
	assert.Equal(t, 60, rec.TotalTimeMinutes())
}
