package recipe

import (
	"context"
	"strings"

	"recipe-hub-backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetVisibleRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetVisibleRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByCategory(ctx context.Context, categoryID string, page, limit int) ([]*entities.Recipe, int64, error)
		GetTrendingRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRelatedRecipes(ctx context.Context, categoryID, excludeID string, limit int) ([]*entities.Recipe, error)
		SearchRecipes(ctx context.Context, term string, page, limit int) ([]*entities.Recipe, int64, error)
		IncrementViews(ctx context.Context, id string) error
		UpdateRecipeRating(ctx context.Context, id string) error
		GetApprovedReviews(ctx context.Context, recipeID string) ([]*entities.Review, error)
		CountActiveRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// visible narrows a recipe query to rows readers may see: published and active.
func visible(db *gorm.DB) *gorm.DB {
	return db.Where("published_at IS NOT NULL AND status = ?", entities.RecipeStatusActive)
}

// recencyOrder keeps equal publish timestamps deterministic by breaking the
// tie on id.
const recencyOrder = "published_at DESC, id DESC"

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetVisibleRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := visible(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetVisibleRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := visible(r.db.WithContext(ctx).Model(&entities.Recipe{})).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := visible(r.db.WithContext(ctx)).
		Offset(offset).
		Limit(limit).
		Order(recencyOrder).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, categoryID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := visible(r.db.WithContext(ctx).Model(&entities.Recipe{})).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := visible(r.db.WithContext(ctx)).
		Where("category_id = ?", categoryID).
		Offset(offset).
		Limit(limit).
		Order(recencyOrder).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetTrendingRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := visible(r.db.WithContext(ctx)).
		Where("is_trending = ?", true).
		Order(recencyOrder).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRelatedRecipes(ctx context.Context, categoryID, excludeID string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := visible(r.db.WithContext(ctx)).
		Where("category_id = ?", categoryID).
		Where("id <> ?", excludeID).
		Order(recencyOrder).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, term string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit
	pattern := "%" + strings.ToLower(term) + "%"

	match := "LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(content) LIKE ?"

	if err := visible(r.db.WithContext(ctx).Model(&entities.Recipe{})).
		Where(match, pattern, pattern, pattern).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := visible(r.db.WithContext(ctx)).
		Where(match, pattern, pattern, pattern).
		Offset(offset).
		Limit(limit).
		Order(recencyOrder).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// IncrementViews bumps the counter in a single UPDATE so concurrent
// detail-page reads never lose an increment.
func (r *recipeRepository) IncrementViews(ctx context.Context, id string) error {
	result := visible(r.db.WithContext(ctx).Model(&entities.Recipe{})).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRecipeRating recomputes the denormalized average from approved
// reviews inside the database.
func (r *recipeRepository) UpdateRecipeRating(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("rating", gorm.Expr(
			"(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE recipe_id = ? AND is_approved = ?)",
			id, true,
		)).Error
}

func (r *recipeRepository) GetApprovedReviews(ctx context.Context, recipeID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND is_approved = ?", recipeID, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *recipeRepository) CountActiveRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("status = ?", entities.RecipeStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
