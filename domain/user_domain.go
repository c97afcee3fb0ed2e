package domain

import "errors"

var (
	MessageSuccessRegister = "account registered successfully"
	MessageSuccessLogin    = "login success"

	MessageFailedRegister = "failed to register account"
	MessageFailedLogin    = "failed to login"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyInUse    = errors.New("an account with this email already exists")
	ErrUsernameAlreadyInUse = errors.New("username already taken")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrCredentialsInvalid   = errors.New("invalid username or password")
)

type (
	RegisterRequest struct {
		Username        string `json:"username" validate:"required,min=3,max=150"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=8"`
		PasswordConfirm string `json:"password_confirm" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
