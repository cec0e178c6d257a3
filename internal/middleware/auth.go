// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ctxKey string

const (
	userKey   ctxKey = "user"
	rejectKey ctxKey = "reject"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier func(token string) (int64, error)

// BearerAuth is a middleware that authenticates requests carrying an
// "Authorization: Bearer <token>" header.
//
// A valid token puts the user id into the request context. Requests
// without a usable token pass through anonymously so that public routes
// ignore stale credentials; RequireUser rejects them on protected routes.
func BearerAuth(verify TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				ctx = context.WithValue(ctx, rejectKey, "Invalid authorization header")
			} else if userID, err := verify(token); err != nil {
				ctx = context.WithValue(ctx, rejectKey, "Could not validate credentials")
			} else {
				ctx = WithUserID(ctx, userID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser answers 401 with a FastAPI-style detail body unless
// BearerAuth authenticated the request.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			detail, rejected := r.Context().Value(rejectKey).(string)
			if !rejected {
				detail = "Not authenticated"
			}
			unauthorized(w, detail)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserID stores id in ctx.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userKey, id)
}

// GetUserIDFromContext extracts the authenticated user id from the request
// context.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
