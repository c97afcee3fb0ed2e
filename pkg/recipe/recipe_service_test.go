package recipe

import (
	"context"
	"testing"
	"time"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/pkg/category"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecipeDetail(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := NewRecipeRepository(db)
	categoryRepo := category.NewCategoryRepository(db)
	svc := NewRecipeService(recipeRepo, categoryRepo, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	now := time.Now()
	rec := seedRecipe(t, db, cat.ID, "lasagna", ptrTime(now), entities.RecipeStatusActive, false)

	// four siblings, only three may come back
	for i := 1; i <= 4; i++ {
		seedRecipe(t, db, cat.ID, "sibling", ptrTime(now.Add(-time.Duration(i)*time.Hour)), entities.RecipeStatusActive, false)
	}

	approved := &entities.Review{ID: uuid.New(), RecipeID: rec.ID, Name: "Ana", Rating: 5, IsApproved: true}
	pending := &entities.Review{ID: uuid.New(), RecipeID: rec.ID, Name: "Bob", Rating: 1}
	require.NoError(t, db.Create(approved).Error)
	require.NoError(t, db.Create(pending).Error)

	res, err := svc.GetRecipeDetail(ctx, rec.ID.String())
	require.NoError(t, err)

	assert.Equal(t, rec.ID.String(), res.ID)
	assert.Equal(t, cat.Name, res.CategoryName)
	assert.Equal(t, 30, res.TotalTimeMinutes)
	assert.Equal(t, int64(1), res.ViewsCount, "detail fetch counts exactly one view")
	assert.Len(t, res.RelatedRecipes, 3)
	for _, related := range res.RelatedRecipes {
		assert.NotEqual(t, res.ID, related.ID)
		assert.Equal(t, cat.ID.String(), related.CategoryID)
	}

	require.Len(t, res.Reviews, 1, "pending reviews stay hidden")
	assert.Equal(t, "Ana", res.Reviews[0].Name)

	// a second fetch counts a second view
	res, err = svc.GetRecipeDetail(ctx, rec.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ViewsCount)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := NewRecipeRepository(db)
	categoryRepo := category.NewCategoryRepository(db)
	svc := NewRecipeService(recipeRepo, categoryRepo, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	inactive := seedRecipe(t, db, cat.ID, "inactive", ptrTime(time.Now()), entities.RecipeStatusInactive, false)

	_, err := svc.GetRecipeDetail(ctx, inactive.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// the hidden row must not have been counted
	got, err := recipeRepo.GetRecipeByID(ctx, inactive.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.ViewsCount)
}

func TestGetCategoryDetail(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := NewRecipeRepository(db)
	categoryRepo := category.NewCategoryRepository(db)
	svc := NewRecipeService(recipeRepo, categoryRepo, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	other := seedCategory(t, db, "Lunch")
	seedRecipe(t, db, cat.ID, "one", ptrTime(time.Now()), entities.RecipeStatusActive, false)
	seedRecipe(t, db, other.ID, "two", ptrTime(time.Now()), entities.RecipeStatusActive, false)

	res, err := svc.GetCategoryDetail(ctx, cat.ID.String(), 1, 6)
	require.NoError(t, err)
	assert.Equal(t, cat.Name, res.Category.Name)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, int64(1), res.Pagination.Total)

	require.Len(t, res.RelatedCategories, 1)
	assert.Equal(t, other.Name, res.RelatedCategories[0].Name)
	assert.Equal(t, int64(1), res.RelatedCategories[0].TotalRecipes)

	_, err = svc.GetCategoryDetail(ctx, uuid.NewString(), 1, 6)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateAndUpdateRecipe(t *testing.T) {
	db := setupTestDB(t)
	recipeRepo := NewRecipeRepository(db)
	categoryRepo := category.NewCategoryRepository(db)
	svc := NewRecipeService(recipeRepo, categoryRepo, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Dinner")
	authorID := uuid.NewString()

	res, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:           "Roast",
		CategoryID:      cat.ID.String(),
		PrepTimeMinutes: 20,
		CookTimeMinutes: 40,
		Publish:         true,
	}, authorID)
	require.NoError(t, err)
	assert.Equal(t, 60, res.TotalTimeMinutes)
	assert.Equal(t, entities.RecipeStatusActive, res.Status)
	assert.NotNil(t, res.PublishedAt)
	assert.Equal(t, 4, res.Servings)
	assert.Equal(t, entities.DifficultyMedium, res.Difficulty)

	_, err = svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:      "Orphan",
		CategoryID: uuid.NewString(),
	}, authorID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	status := entities.RecipeStatusInactive
	err = svc.UpdateRecipe(ctx, res.ID, domain.UpdateRecipeRequest{Status: status})
	require.NoError(t, err)

	got, err := recipeRepo.GetRecipeByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.RecipeStatusInactive, got.Status)

	err = svc.UpdateRecipe(ctx, uuid.NewString(), domain.UpdateRecipeRequest{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
