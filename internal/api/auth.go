package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// AuthAPI covers account registration, login and password management.
// Login and Register store the returned credentials in the client session.
type AuthAPI struct {
	c *Client
}

// Login authenticates by phone and password and saves the session.
func (a *AuthAPI) Login(ctx context.Context, phone, password string) (models.TokenResponse, error) {
	tok, err := post[models.TokenResponse](ctx, a.c, "/api/auth/login", models.LoginRequest{
		Phone:    phone,
		Password: password,
	})
	if err != nil {
		return models.TokenResponse{}, err
	}
	if err := a.c.session.Save(ctx, tok); err != nil {
		return models.TokenResponse{}, err
	}
	return tok, nil
}

// Register creates an account and saves the session for it.
func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	tok, err := post[models.TokenResponse](ctx, a.c, "/api/auth/register", req)
	if err != nil {
		return models.TokenResponse{}, err
	}
	if err := a.c.session.Save(ctx, tok); err != nil {
		return models.TokenResponse{}, err
	}
	return tok, nil
}

// Logout tells the backend and then clears the local session. The session
// is cleared even when the backend call fails.
func (a *AuthAPI) Logout(ctx context.Context) (models.Message, error) {
	msg, err := post[models.Message](ctx, a.c, "/api/auth/logout", nil)
	if cerr := a.c.session.Clear(context.WithoutCancel(ctx)); cerr != nil {
		a.c.log.Warn("failed to clear session on logout", zap.Error(cerr))
		if err == nil {
			return models.Message{}, cerr
		}
	}
	return msg, err
}

// Me returns the account behind the stored token.
func (a *AuthAPI) Me(ctx context.Context) (models.Me, error) {
	return get[models.Me](ctx, a.c, "/api/auth/me")
}

// ChangePassword sends the passwords as query parameters, which is where
// the backend reads them from.
func (a *AuthAPI) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.Message, error) {
	q := NewQuery().
		Add("current_password", req.CurrentPassword).
		Add("new_password", req.NewPassword).
		Add("confirm_password", req.ConfirmPassword)
	return post[models.Message](ctx, a.c, "/api/auth/change-password"+q.Encode(), nil)
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, phone string) (models.Message, error) {
	q := NewQuery().Add("phone", phone)
	return post[models.Message](ctx, a.c, "/api/auth/forgot-password"+q.Encode(), nil)
}

func (a *AuthAPI) ResetPassword(ctx context.Context, req models.ResetPasswordRequest, resetToken string) (models.Message, error) {
	q := NewQuery().Add("reset_token", resetToken)
	return post[models.Message](ctx, a.c, "/api/auth/reset-password"+q.Encode(), req)
}

// DeleteAccount deactivates the account and clears the session on success.
func (a *AuthAPI) DeleteAccount(ctx context.Context, password string) (models.Message, error) {
	q := NewQuery().Add("password", password)
	msg, err := del[models.Message](ctx, a.c, "/api/auth/delete-account"+q.Encode())
	if err != nil {
		return models.Message{}, err
	}
	if err := a.c.session.Clear(context.WithoutCancel(ctx)); err != nil {
		return msg, err
	}
	return msg, nil
}

// AuthOp names the auth operation a failure came from.
type AuthOp string

const (
	OpLogin    AuthOp = "login"
	OpRegister AuthOp = "register"
)

// FailureCode is a stable identifier for an auth failure that a UI can
// translate.
type FailureCode string

const (
	FailureInvalidCredentials FailureCode = "invalid_credentials"
	FailureAccountDeactivated FailureCode = "account_deactivated"
	FailurePhoneExists        FailureCode = "phone_exists"
	FailureCheckInput         FailureCode = "check_input"
	FailureBackend            FailureCode = "backend"
	FailureLoginFailed        FailureCode = "login_failed"
	FailureRegisterFailed     FailureCode = "registration_failed"
)

var failureText = map[FailureCode]string{
	FailureInvalidCredentials: "Invalid phone number or password",
	FailureAccountDeactivated: "Account is deactivated",
	FailurePhoneExists:        "Phone number already registered",
	FailureCheckInput:         "Please check your input",
	FailureLoginFailed:        "Login failed",
	FailureRegisterFailed:     "Registration failed",
}

// AuthFailure maps a Login or Register error to a code and an English
// message. Backend messages are passed through when no mapping applies.
func AuthFailure(op AuthOp, err error) (FailureCode, string) {
	fallback := FailureLoginFailed
	if op == OpRegister {
		fallback = FailureRegisterFailed
	}
	if err == nil {
		return "", ""
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return fallback, failureText[fallback]
	}

	switch {
	case op == OpLogin && apiErr.StatusCode == http.StatusUnauthorized:
		if strings.Contains(strings.ToLower(apiErr.Message), "deactivated") {
			return FailureAccountDeactivated, failureText[FailureAccountDeactivated]
		}
		return FailureInvalidCredentials, failureText[FailureInvalidCredentials]
	case op == OpRegister && apiErr.StatusCode == http.StatusConflict:
		return FailurePhoneExists, failureText[FailurePhoneExists]
	case op == OpRegister && apiErr.StatusCode == http.StatusUnprocessableEntity:
		return FailureCheckInput, failureText[FailureCheckInput]
	}

	if apiErr.Kind == KindHTTP && apiErr.Message != "" {
		return FailureBackend, apiErr.Message
	}
	return fallback, failureText[fallback]
}
