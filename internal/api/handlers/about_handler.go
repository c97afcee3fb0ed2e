package handlers

import (
	"recipe-hub-backend/domain"
	"recipe-hub-backend/internal/api/presenters"
	"recipe-hub-backend/pkg/about"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AboutHandler interface {
		GetAbout(c *fiber.Ctx) error
		UpsertAbout(c *fiber.Ctx) error
	}

	aboutHandler struct {
		aboutService about.AboutService
		validator    *validator.Validate
	}
)

func NewAboutHandler(aboutService about.AboutService, validator *validator.Validate) AboutHandler {
	return &aboutHandler{
		aboutService: aboutService,
		validator:    validator,
	}
}

func (h *aboutHandler) GetAbout(c *fiber.Ctx) error {
	res, err := h.aboutService.GetAbout(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAbout, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAbout)
}

func (h *aboutHandler) UpsertAbout(c *fiber.Ctx) error {
	req := new(domain.UpsertAboutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedUpdateAbout, err)
	}

	if err := h.aboutService.UpsertAbout(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateAbout, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateAbout)
}
