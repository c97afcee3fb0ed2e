package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitReview  = "review submitted successfully"
	MessageSuccessApproveReview = "review approved successfully"

	MessageFailedSubmitReview  = "failed to submit review"
	MessageFailedApproveReview = "failed to approve review"

	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

type (
	SubmitReviewRequest struct {
		Name    string `json:"name" validate:"omitempty,max=100"`
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		Name      string    `json:"name,omitempty"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
