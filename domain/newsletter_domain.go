package domain

import "errors"

var (
	MessageSuccessSubscribe   = "subscribed to newsletter successfully"
	MessageSuccessUnsubscribe = "unsubscribed from newsletter successfully"

	MessageFailedSubscribe   = "failed to subscribe to newsletter"
	MessageFailedUnsubscribe = "failed to unsubscribe from newsletter"

	ErrEmailAlreadySubscribed = errors.New("email already subscribed")
	ErrSubscriptionNotFound   = errors.New("subscription not found")
)

type (
	SubscribeRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SubscriptionResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		IsActive bool   `json:"is_active"`
	}
)
