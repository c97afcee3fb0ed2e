package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/internal/utils/storage"
	"recipe-hub-backend/pkg/category"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// TrendingLimit caps the home page trending section.
	TrendingLimit = 6
	// RelatedCategoriesLimit caps the sidebar on category pages.
	RelatedCategoriesLimit = 6
	// RelatedRecipesLimit caps the recommendations under a recipe detail.
	RelatedRecipesLimit = 3
)

type (
	RecipeService interface {
		GetHome(ctx context.Context) (domain.HomeResponse, error)
		GetCategoryDetail(ctx context.Context, categoryID string, page, limit int) (domain.CategoryDetailResponse, error)
		GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error)
		SearchRecipes(ctx context.Context, term string, page, limit int) ([]domain.RecipeResponse, int64, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id string) error
		UploadRecipeImage(ctx context.Context, recipeID string, image *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, categoryRepository category.CategoryRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func RecipeResponseFromEntity(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:               r.ID.String(),
		Title:            r.Title,
		Description:      r.Description,
		ImageURL:         r.ImageURL,
		CategoryID:       r.CategoryID.String(),
		Status:           r.Status,
		PrepTimeMinutes:  r.PrepTimeMinutes,
		CookTimeMinutes:  r.CookTimeMinutes,
		TotalTimeMinutes: r.TotalTimeMinutes(),
		Servings:         r.Servings,
		Difficulty:       r.Difficulty,
		ViewsCount:       r.ViewsCount,
		LikesCount:       r.LikesCount,
		Rating:           r.Rating,
		IsTrending:       r.IsTrending,
		IsFeatured:       r.IsFeatured,
		PublishedAt:      r.PublishedAt,
	}
}

func recipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, RecipeResponseFromEntity(r))
	}
	return res
}

func CategoryResponseFromEntity(c *entities.Category) domain.CategoryResponse {
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

func (s *recipeService) GetHome(ctx context.Context) (domain.HomeResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return domain.HomeResponse{}, err
	}

	trending, err := s.recipeRepository.GetTrendingRecipes(ctx, TrendingLimit)
	if err != nil {
		return domain.HomeResponse{}, err
	}

	categoryRes := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		categoryRes = append(categoryRes, CategoryResponseFromEntity(c))
	}

	return domain.HomeResponse{
		Categories:      categoryRes,
		TrendingRecipes: recipeResponses(trending),
	}, nil
}

func (s *recipeService) GetCategoryDetail(ctx context.Context, categoryID string, page, limit int) (domain.CategoryDetailResponse, error) {
	cat, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryDetailResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryDetailResponse{}, err
	}

	recipes, count, err := s.recipeRepository.GetRecipesByCategory(ctx, categoryID, page, limit)
	if err != nil {
		return domain.CategoryDetailResponse{}, err
	}

	related, err := s.categoryRepository.GetRelatedCategories(ctx, categoryID, RelatedCategoriesLimit)
	if err != nil {
		return domain.CategoryDetailResponse{}, err
	}

	recipeRes := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res := RecipeResponseFromEntity(r)
		res.CategoryName = cat.Name
		recipeRes = append(recipeRes, res)
	}

	relatedRes := make([]domain.RelatedCategoryResponse, 0, len(related))
	for _, c := range related {
		relatedRes = append(relatedRes, domain.RelatedCategoryResponse{
			CategoryResponse: CategoryResponseFromEntity(&c.Category),
			TotalRecipes:     c.TotalRecipes,
		})
	}

	return domain.CategoryDetailResponse{
		Category:          CategoryResponseFromEntity(cat),
		Recipes:           recipeRes,
		RelatedCategories: relatedRes,
		Pagination: domain.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      count,
			TotalPages: (count + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetVisibleRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return recipeResponses(recipes), count, nil
}

// GetRecipeDetail counts the view first so the returned recipe already
// carries the bumped counter. Every detail fetch increments exactly once.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error) {
	if err := s.recipeRepository.IncrementViews(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	rec, err := s.recipeRepository.GetVisibleRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	related, err := s.recipeRepository.GetRelatedRecipes(ctx, rec.CategoryID.String(), recipeID, RelatedRecipesLimit)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	reviews, err := s.recipeRepository.GetApprovedReviews(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	reviewRes := make([]domain.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		reviewRes = append(reviewRes, domain.ReviewResponse{
			ID:        rv.ID.String(),
			RecipeID:  rv.RecipeID.String(),
			Name:      rv.Name,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			CreatedAt: rv.CreatedAt,
		})
	}

	res := domain.RecipeDetailResponse{
		RecipeResponse: RecipeResponseFromEntity(rec),
		Content:        rec.Content,
		RelatedRecipes: recipeResponses(related),
		Reviews:        reviewRes,
	}

	if cat, err := s.categoryRepository.GetCategoryByID(ctx, rec.CategoryID.String()); err == nil {
		res.CategoryName = cat.Name
	}

	return res, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, term string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.SearchRecipes(ctx, term, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return recipeResponses(recipes), count, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrCategoryNotFound
		}
		return domain.RecipeResponse{}, err
	}

	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	rec := &entities.Recipe{
		ID:              uuid.New(),
		AuthorID:        authorUUID,
		CategoryID:      categoryUUID,
		Title:           req.Title,
		Description:     req.Description,
		Content:         req.Content,
		Status:          entities.RecipeStatusActive,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
		IsTrending:      req.IsTrending,
		IsFeatured:      req.IsFeatured,
	}
	if rec.Servings == 0 {
		rec.Servings = 4
	}
	if rec.Difficulty == "" {
		rec.Difficulty = entities.DifficultyMedium
	}
	if req.Publish {
		now := time.Now()
		rec.PublishedAt = &now
	}

	if err := s.recipeRepository.CreateRecipe(ctx, rec); err != nil {
		return domain.RecipeResponse{}, err
	}

	return RecipeResponseFromEntity(rec), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if req.Title != "" {
		rec.Title = req.Title
	}
	if req.Description != "" {
		rec.Description = req.Description
	}
	if req.Content != "" {
		rec.Content = req.Content
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		rec.CategoryID = categoryUUID
	}
	if req.Status != "" {
		rec.Status = req.Status
	}
	if req.PrepTimeMinutes != nil {
		rec.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		rec.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.Servings != nil {
		rec.Servings = *req.Servings
	}
	if req.Difficulty != "" {
		rec.Difficulty = req.Difficulty
	}
	if req.IsTrending != nil {
		rec.IsTrending = *req.IsTrending
	}
	if req.IsFeatured != nil {
		rec.IsFeatured = *req.IsFeatured
	}
	if req.Publish != nil {
		if *req.Publish {
			if rec.PublishedAt == nil {
				now := time.Now()
				rec.PublishedAt = &now
			}
		} else {
			rec.PublishedAt = nil
		}
	}

	return s.recipeRepository.UpdateRecipe(ctx, rec)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, image *multipart.FileHeader) (string, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if rec.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(rec.ImageURL)
		_ = s.s3.DeleteFile(existingKey)
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s", rec.ID.String()),
		image,
		"recipes",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	rec.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, rec); err != nil {
		return "", err
	}

	return rec.ImageURL, nil
}
