package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the backend puts into its access tokens.
type Claims struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// ParseClaims decodes token as a JWT without verifying its signature. The
// client never holds the signing key; the result is only good for local
// decisions such as expiry.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}
	return claims, nil
}

// Claims decodes the stored bearer token.
func (m *Manager) Claims(ctx context.Context) (*Claims, error) {
	token, err := m.AuthToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

// Expired reports whether the stored token carries an exp claim at or before
// now. Tokens without exp never expire.
func (m *Manager) Expired(ctx context.Context, now time.Time) (bool, error) {
	claims, err := m.Claims(ctx)
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return !now.Before(claims.ExpiresAt.Time), nil
}
