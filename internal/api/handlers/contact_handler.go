package handlers

import (
	"errors"

	"recipe-hub-backend/domain"
	"recipe-hub-backend/internal/api/presenters"
	"recipe-hub-backend/pkg/contact"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ContactHandler interface {
		SubmitContact(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
	}

	contactHandler struct {
		contactService contact.ContactService
		validator      *validator.Validate
	}
)

func NewContactHandler(contactService contact.ContactService, validator *validator.Validate) ContactHandler {
	return &contactHandler{
		contactService: contactService,
		validator:      validator,
	}
}

func (h *contactHandler) SubmitContact(c *fiber.Ctx) error {
	req := new(domain.SubmitContactRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedSubmitContact, err)
	}

	res, err := h.contactService.SubmitContact(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitContact, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitContact)
}

func (h *contactHandler) MarkAsRead(c *fiber.Ctx) error {
	contactID := c.Params("id")

	if err := h.contactService.MarkAsRead(c.Context(), contactID); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkRead, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}
