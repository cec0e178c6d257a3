package fakeapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	store := NewStore()
	tokens := NewTokens([]byte("secret"), time.Hour, store)

	tok, err := tokens.Issue(models.User{ID: 7, Phone: "+911234567890", UserType: models.UserNGO, Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, int64(3600), tok.ExpiresIn)
	assert.Equal(t, int64(7), tok.UserID)

	id, err := tokens.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	// The client reads the same claims without the key.
	claims, err := session.ParseClaims(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ngo", claims.UserType)
	assert.Len(t, claims.ID, 26, "ulid token id")

	store.Revoke(claims.ID)
	_, err = tokens.Verify(tok.AccessToken)
	assert.ErrorIs(t, err, errRevoked)
}

func TestTokens_Rejects(t *testing.T) {
	store := NewStore()
	tokens := NewTokens([]byte("secret"), time.Minute, store)
	tok, err := tokens.Issue(models.User{ID: 1})
	require.NoError(t, err)

	other := NewTokens([]byte("other"), time.Minute, store)
	_, err = other.Verify(tok.AccessToken)
	assert.Error(t, err, "wrong key")

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tokens.Verify(tok.AccessToken)
	assert.Error(t, err, "expired")

	_, err = tokens.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "Str0ng!Pass"))
	assert.False(t, CheckPassword(hash, "str0ng!pass"))
}

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!Pass", true},
		{"short1!A", true},
		{"Sh0rt!", false},
		{"nouppercase1!", false},
		{"NOLOWERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSpecial11", false},
		{"Bad#Char11!", false},
		{"Пароль1!Aa", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, strongPassword(tt.password))
		})
	}
}
