package domain

import "errors"

var (
	MessageSuccessSubmitContact = "your message has been sent successfully"
	MessageSuccessMarkRead      = "contact marked as read"

	MessageFailedSubmitContact = "there was an error sending your message, please check the form"
	MessageFailedMarkRead      = "failed to mark contact as read"

	ErrContactNotFound = errors.New("contact not found")
)

type (
	SubmitContactRequest struct {
		Name    string `json:"name" validate:"required,max=100"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"omitempty,phone"`
		Subject string `json:"subject" validate:"omitempty,max=200"`
		Message string `json:"message" validate:"required"`
	}

	ContactResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone,omitempty"`
		Subject string `json:"subject,omitempty"`
		Message string `json:"message"`
	}
)
