package models

// LoginRequest authenticates by phone number and password.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterRequest creates an account. The validate tags are the backend's
// acceptance rules; phone and strongpassword are custom rules.
type RegisterRequest struct {
	Phone           string   `json:"phone" validate:"required,phone"`
	Password        string   `json:"password" validate:"required,strongpassword"`
	ConfirmPassword string   `json:"confirm_password" validate:"eqfield=Password"`
	UserType        UserType `json:"user_type" validate:"required,oneof=individual company ngo investor"`
	Name            string   `json:"name" validate:"required,notblank"`
	Organization    string   `json:"organization,omitempty"`
}

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	UserID      int64    `json:"user_id"`
	UserType    UserType `json:"user_type"`
	Name        string   `json:"name"`
}

// Me is the account behind the current bearer token.
type Me struct {
	ID           int64    `json:"id"`
	Phone        string   `json:"phone"`
	UserType     UserType `json:"user_type"`
	Name         string   `json:"name"`
	Organization *string  `json:"organization"`
	CreatedAt    string   `json:"created_at"`
	LastLogin    *string  `json:"last_login"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ResetPasswordRequest struct {
	Phone           string `json:"phone"`
	NewPassword     string `json:"new_password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=NewPassword"`
}
