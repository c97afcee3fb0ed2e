package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// phoneRegex accepts an optional leading + followed by 7 to 15 digits.
var phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

func InitValidator() {
	Validate = validator.New()
	_ = Validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}
