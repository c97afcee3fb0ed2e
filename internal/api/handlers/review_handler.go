package handlers

import (
	"errors"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/internal/api/presenters"
	"recipe-hub-backend/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		SubmitReview(c *fiber.Ctx) error
		ApproveReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) SubmitReview(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.SubmitReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedSubmitReview, err)
	}

	// reviews may be anonymous; user_id is only set behind auth middleware
	userID, _ := c.Locals("user_id").(string)

	res, err := h.reviewService.SubmitReview(c.Context(), recipeID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSubmitReview, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitReview)
}

func (h *reviewHandler) ApproveReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	if err := h.reviewService.ApproveReview(c.Context(), reviewID); err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedApproveReview, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedApproveReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveReview)
}
