package handlers

import (
	"errors"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/internal/api/presenters"
	"recipe-hub-backend/pkg/newsletter"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NewsletterHandler interface {
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
	}

	newsletterHandler struct {
		newsletterService newsletter.NewsletterService
		validator         *validator.Validate
	}
)

func NewNewsletterHandler(newsletterService newsletter.NewsletterService, validator *validator.Validate) NewsletterHandler {
	return &newsletterHandler{
		newsletterService: newsletterService,
		validator:         validator,
	}
}

func (h *newsletterHandler) Subscribe(c *fiber.Ctx) error {
	req := new(domain.SubscribeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedSubscribe, err)
	}

	res, err := h.newsletterService.Subscribe(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadySubscribed) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSubscribe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *newsletterHandler) Unsubscribe(c *fiber.Ctx) error {
	req := new(domain.SubscribeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedUnsubscribe, err)
	}

	if err := h.newsletterService.Unsubscribe(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUnsubscribe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUnsubscribe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsubscribe)
}
