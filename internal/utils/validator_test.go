package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Phone string `validate:"omitempty,phone"`
}

func TestPhoneValidation(t *testing.T) {
	InitValidator()
	require.NotNil(t, Validate)

	valid := []string{
		"+19998887777",
		"1234567",
		"123456789012345",
		"",
	}
	for _, phone := range valid {
		assert.NoError(t, Validate.Struct(phoneForm{Phone: phone}), "expected %q to pass", phone)
	}

	invalid := []string{
		"12345",
		"123456",           // one digit short
		"1234567890123456", // one digit over
		"+1 999 888 7777",
		"phone",
		"++1234567",
	}
	for _, phone := range invalid {
		assert.Error(t, Validate.Struct(phoneForm{Phone: phone}), "expected %q to fail", phone)
	}
}

type emailForm struct {
	Email string `validate:"required,email"`
}

func TestEmailValidation(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(emailForm{Email: "a@x.com"}))
	assert.Error(t, Validate.Struct(emailForm{Email: "not-an-email"}))
	assert.Error(t, Validate.Struct(emailForm{Email: ""}))
}
