package about

import (
	"context"
	"errors"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/entities"
	"recipe-hub-backend/pkg/category"
	"recipe-hub-backend/pkg/newsletter"
	"recipe-hub-backend/pkg/recipe"
	"recipe-hub-backend/pkg/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AboutService interface {
		GetAbout(ctx context.Context) (domain.AboutResponse, error)
		UpsertAbout(ctx context.Context, req domain.UpsertAboutRequest) error
	}

	aboutService struct {
		aboutRepository      AboutRepository
		newsletterRepository newsletter.NewsletterRepository
		recipeRepository     recipe.RecipeRepository
		reviewRepository     review.ReviewRepository
		categoryRepository   category.CategoryRepository
	}
)

func NewAboutService(
	aboutRepository AboutRepository,
	newsletterRepository newsletter.NewsletterRepository,
	recipeRepository recipe.RecipeRepository,
	reviewRepository review.ReviewRepository,
	categoryRepository category.CategoryRepository,
) AboutService {
	return &aboutService{
		aboutRepository:      aboutRepository,
		newsletterRepository: newsletterRepository,
		recipeRepository:     recipeRepository,
		reviewRepository:     reviewRepository,
		categoryRepository:   categoryRepository,
	}
}

func (s *aboutService) GetAbout(ctx context.Context) (domain.AboutResponse, error) {
	res := domain.AboutResponse{
		CoreValues: []domain.CoreValueResponse{},
		Team:       []domain.TeamMemberResponse{},
	}

	page, err := s.aboutRepository.GetAboutPage(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AboutResponse{}, err
	}
	if page != nil {
		res.About = &domain.AboutPageResponse{
			Title:    page.Title,
			Mission:  page.Mission,
			Story:    page.Story,
			ImageURL: page.ImageURL,
		}
	}

	values, err := s.aboutRepository.GetCoreValues(ctx)
	if err != nil {
		return domain.AboutResponse{}, err
	}
	for _, v := range values {
		res.CoreValues = append(res.CoreValues, domain.CoreValueResponse{
			Title:       v.Title,
			Icon:        v.Icon,
			Description: v.Description,
		})
	}

	members, err := s.aboutRepository.GetTeamMembers(ctx)
	if err != nil {
		return domain.AboutResponse{}, err
	}
	for _, m := range members {
		res.Team = append(res.Team, domain.TeamMemberResponse{
			Name:     m.Name,
			Role:     m.Role,
			Bio:      m.Bio,
			ImageURL: m.ImageURL,
		})
	}

	if res.Stats.ActiveSubscribers, err = s.newsletterRepository.CountActiveSubscriptions(ctx); err != nil {
		return domain.AboutResponse{}, err
	}
	if res.Stats.ActiveRecipes, err = s.recipeRepository.CountActiveRecipes(ctx); err != nil {
		return domain.AboutResponse{}, err
	}
	if res.Stats.ApprovedReviews, err = s.reviewRepository.CountApprovedReviews(ctx); err != nil {
		return domain.AboutResponse{}, err
	}
	if res.Stats.Categories, err = s.categoryRepository.CountCategories(ctx); err != nil {
		return domain.AboutResponse{}, err
	}

	return res, nil
}

func (s *aboutService) UpsertAbout(ctx context.Context, req domain.UpsertAboutRequest) error {
	return s.aboutRepository.UpsertAboutPage(ctx, &entities.AboutPage{
		ID:      uuid.New(),
		Title:   req.Title,
		Mission: req.Mission,
		Story:   req.Story,
	})
}
