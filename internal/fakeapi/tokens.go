package fakeapi

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

// DefaultTokenTTL matches the backend's access token lifetime.
const DefaultTokenTTL = 24 * time.Hour

var errRevoked = errors.New("token revoked")

// Tokens issues and verifies HS256 access tokens carrying the same claims
// as the real backend.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	store  *Store
	now    func() time.Time
}

func NewTokens(secret []byte, ttl time.Duration, store *Store) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: secret, ttl: ttl, store: store, now: time.Now}
}

// Issue signs a token for u and returns the login response.
func (t *Tokens) Issue(u models.User) (models.TokenResponse, error) {
	now := t.now()
	claims := session.Claims{
		UserID:   u.ID,
		UserType: string(u.UserType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Phone,
			ID:        newULID(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return models.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(t.ttl / time.Second),
		UserID:      u.ID,
		UserType:    u.UserType,
		Name:        u.Name,
	}, nil
}

// Parse verifies signature, expiry and revocation.
func (t *Tokens) Parse(token string) (*session.Claims, error) {
	claims := &session.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	if t.store.Revoked(claims.ID) {
		return nil, errRevoked
	}
	return claims, nil
}

// Verify adapts Parse to middleware.BearerAuth.
func (t *Tokens) Verify(token string) (int64, error) {
	claims, err := t.Parse(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// HashPassword hashes a password with bcrypt at cost.
func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// CheckPassword compares a bcrypt hash with a candidate password.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

func newULID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()
}
