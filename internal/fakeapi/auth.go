package fakeapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/middleware"
	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	Store  *Store
	Tokens *Tokens
	// Cost is the bcrypt cost of new password hashes.
	Cost int
	Log  *zap.Logger
}

// Register handles POST /api/auth/register. Validation failures are 422,
// a taken phone number 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decode(w, r, &req) || !valid(w, &req) {
		return
	}

	hash, err := HashPassword(req.Password, h.Cost)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	u, err := h.Store.CreateUser(models.User{
		Phone:        req.Phone,
		UserType:     req.UserType,
		Name:         req.Name,
		Organization: req.Organization,
	}, hash)
	if errors.Is(err, ErrExists) {
		writeDetail(w, http.StatusConflict, "Phone number already registered")
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	tok, err := h.Tokens.Issue(u)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	h.Log.Info("user registered", zap.Int64("user_id", u.ID), zap.String("user_type", string(u.UserType)))
	writeJSON(w, http.StatusOK, tok)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	u, hash, err := h.Store.UserByPhone(req.Phone)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid phone number or password")
		return
	}
	if !u.IsActive {
		writeDetail(w, http.StatusUnauthorized, "Account is deactivated")
		return
	}
	if !CheckPassword(hash, req.Password) {
		writeDetail(w, http.StatusUnauthorized, "Invalid phone number or password")
		return
	}

	h.Store.TouchLogin(u.ID)
	tok, err := h.Tokens.Issue(u)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Login failed")
		return
	}
	writeJSON(w, http.StatusOK, tok)
}

// Logout handles POST /api/auth/logout by revoking the presented token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if claims, err := h.Tokens.Parse(token); err == nil {
		h.Store.Revoke(claims.ID)
	}
	writeMessage(w, "Successfully logged out")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(w, r)
	if !ok {
		return
	}
	me := models.Me{
		ID:        u.ID,
		Phone:     u.Phone,
		UserType:  u.UserType,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.Organization != "" {
		me.Organization = &u.Organization
	}
	if u.LastLogin != "" {
		me.LastLogin = &u.LastLogin
	}
	writeJSON(w, http.StatusOK, me)
}

// ChangePassword handles POST /api/auth/change-password. The passwords
// travel as query parameters.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	next := q.Get("new_password")
	if next != q.Get("confirm_password") {
		writeDetail(w, http.StatusBadRequest, "New passwords do not match")
		return
	}
	if validate.Var(next, "required,strongpassword") != nil {
		writeDetail(w, http.StatusBadRequest, weakPassword)
		return
	}
	_, hash, err := h.Store.User(u.ID)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	if !CheckPassword(hash, q.Get("current_password")) {
		writeDetail(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}
	if !h.setPassword(w, u.ID, next) {
		return
	}
	writeMessage(w, "Password changed successfully")
}

// ForgotPassword handles POST /api/auth/forgot-password?phone=. It never
// reveals whether the phone is registered.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if _, _, err := h.Store.UserByPhone(phone); err == nil {
		token := newULID(time.Now())
		h.Store.PutResetToken(token, phone)
		h.Log.Info("password reset initiated", zap.String("reset_token", token))
	}
	writeMessage(w, "If a user with that phone number exists, a password reset has been initiated.")
}

// ResetPassword handles POST /api/auth/reset-password?reset_token=.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decode(w, r, &req) || !valid(w, &req) {
		return
	}
	phone, ok := h.Store.TakeResetToken(r.URL.Query().Get("reset_token"))
	if !ok || phone != req.Phone {
		writeDetail(w, http.StatusBadRequest, "Invalid reset token")
		return
	}
	u, _, err := h.Store.UserByPhone(phone)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	if !h.setPassword(w, u.ID, req.NewPassword) {
		return
	}
	writeMessage(w, "Password reset successfully")
}

// DeleteAccount handles DELETE /api/auth/delete-account?password=.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(w, r)
	if !ok {
		return
	}
	_, hash, err := h.Store.User(u.ID)
	if err != nil || !CheckPassword(hash, r.URL.Query().Get("password")) {
		writeDetail(w, http.StatusUnauthorized, "Password is incorrect")
		return
	}
	if err := h.Store.DeleteUser(u.ID); err != nil {
		writeStoreError(w, err, "User")
		return
	}
	writeMessage(w, "Account deleted successfully")
}

func (h *AuthHandler) setPassword(w http.ResponseWriter, id int64, password string) bool {
	hash, err := HashPassword(password, h.Cost)
	if err == nil {
		err = h.Store.SetPassword(id, hash)
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Failed to update password")
		return false
	}
	return true
}

// current loads the authenticated, active user.
func (h *AuthHandler) current(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	return currentUser(w, r, h.Store)
}

func currentUser(w http.ResponseWriter, r *http.Request, s *Store) (models.User, bool) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return models.User{}, false
	}
	u, _, err := s.User(id)
	if err != nil || !u.IsActive {
		writeDetail(w, http.StatusUnauthorized, "User not found or inactive")
		return models.User{}, false
	}
	return u, true
}
