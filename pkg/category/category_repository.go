package category

import (
	"context"

	"recipe-hub-backend/entities"

	"gorm.io/gorm"
)

type (
	// CategoryWithCount annotates a category with the number of active
	// recipes it holds. The count is derived per query, never stored.
	CategoryWithCount struct {
		entities.Category
		TotalRecipes int64 `json:"total_recipes"`
	}

	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetRelatedCategories(ctx context.Context, excludeID string, limit int) ([]*CategoryWithCount, error)
		CountCategories(ctx context.Context) (int64, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Order("display_order, name").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetRelatedCategories(ctx context.Context, excludeID string, limit int) ([]*CategoryWithCount, error) {
	var categories []*CategoryWithCount
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Select(
			"categories.*, (SELECT COUNT(*) FROM recipes WHERE recipes.category_id = categories.id AND recipes.status = ?) AS total_recipes",
			entities.RecipeStatusActive,
		).
		Where("categories.id <> ?", excludeID).
		Order("display_order, name").
		Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
