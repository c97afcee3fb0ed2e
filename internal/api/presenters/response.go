package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    any               `json:"data,omitempty"`
	Meta    any               `json:"meta,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// ValidationErrorResponse renders validator failures as field-level messages
// with 422, so form callers can re-render per field.
func ValidationErrorResponse(c *fiber.Ctx, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = validationMessage(fe)
		}
		res.Errors = fields
	} else if err != nil {
		res.Error = err.Error()
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "phone":
		return "enter a valid phone number (digits only)"
	case "min":
		return "value is too short or too small"
	case "max":
		return "value is too long or too large"
	case "oneof":
		return "value is not one of the allowed choices"
	case "uuid":
		return "enter a valid identifier"
	default:
		return "invalid value"
	}
}
