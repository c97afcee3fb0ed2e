package review

import (
	"context"
	"errors"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		SubmitReview(ctx context.Context, recipeID string, req domain.SubmitReviewRequest, userID string) (domain.ReviewResponse, error)
		ApproveReview(ctx context.Context, id string) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

// SubmitReview stores the review unapproved. It only shows up on the recipe
// page and in aggregate counts once moderation approves it.
func (s *reviewService) SubmitReview(ctx context.Context, recipeID string, req domain.SubmitReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}

	rec, err := s.recipeRepository.GetVisibleRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ReviewResponse{}, err
	}

	rev := &entities.Review{
		ID:       uuid.New(),
		RecipeID: rec.ID,
		Name:     req.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.ReviewResponse{}, domain.ErrParseUUID
		}
		rev.UserID = &userUUID
	}

	if err := s.reviewRepository.CreateReview(ctx, rev); err != nil {
		return domain.ReviewResponse{}, err
	}

	return domain.ReviewResponse{
		ID:        rev.ID.String(),
		RecipeID:  rev.RecipeID.String(),
		Name:      rev.Name,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt,
	}, nil
}

func (s *reviewService) ApproveReview(ctx context.Context, id string) error {
	rev, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if !rev.IsApproved {
		rev.IsApproved = true
		if err := s.reviewRepository.UpdateReview(ctx, rev); err != nil {
			return err
		}
	}

	// keep the recipe's denormalized average in step with approved reviews
	return s.recipeRepository.UpdateRecipeRating(ctx, rev.RecipeID.String())
}
