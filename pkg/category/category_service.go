package category

import (
	"context"
	"errors"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func toResponse(c *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Icon:         c.Icon,
		ImageURL:     c.ImageURL,
		Description:  c.Description,
		GradientFrom: c.GradientFrom,
		GradientTo:   c.GradientTo,
		Order:        c.Order,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toResponse(c))
	}
	return res, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	cat := &entities.Category{
		ID:           uuid.New(),
		Name:         req.Name,
		Icon:         req.Icon,
		Description:  req.Description,
		GradientFrom: req.GradientFrom,
		GradientTo:   req.GradientTo,
		Order:        req.Order,
	}
	if cat.GradientFrom == "" {
		cat.GradientFrom = "blue-500"
	}
	if cat.GradientTo == "" {
		cat.GradientTo = "purple-500"
	}

	if err := s.categoryRepository.CreateCategory(ctx, cat); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toResponse(cat), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	cat, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != "" {
		cat.Name = req.Name
	}
	if req.Icon != "" {
		cat.Icon = req.Icon
	}
	if req.Description != "" {
		cat.Description = req.Description
	}
	if req.GradientFrom != "" {
		cat.GradientFrom = req.GradientFrom
	}
	if req.GradientTo != "" {
		cat.GradientTo = req.GradientTo
	}
	if req.Order != nil {
		cat.Order = *req.Order
	}

	return s.categoryRepository.UpdateCategory(ctx, cat)
}
