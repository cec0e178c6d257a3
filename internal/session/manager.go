package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// defaultActorID is sent as created_by/changed_by when nobody is signed in.
const defaultActorID int64 = 1

// Manager reads and writes the session values. Missing values read as empty
// strings; only Storage failures are reported as errors.
type Manager struct {
	store Storage
}

// NewManager returns a Manager over store. A nil store means a fresh
// MemoryStore.
func NewManager(store Storage) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Manager{store: store}
}

func (m *Manager) get(ctx context.Context, key string) (string, error) {
	v, err := m.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

func (m *Manager) set(ctx context.Context, key, value string) error {
	if err := m.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// SetAuthToken stores the bearer token. The token is not validated.
func (m *Manager) SetAuthToken(ctx context.Context, token string) error {
	return m.set(ctx, KeyAuthToken, token)
}

// AuthToken returns the stored bearer token or "".
func (m *Manager) AuthToken(ctx context.Context) (string, error) {
	return m.get(ctx, KeyAuthToken)
}

// SetUserID stores the numeric user id.
func (m *Manager) SetUserID(ctx context.Context, id int64) error {
	return m.set(ctx, KeyUserID, strconv.FormatInt(id, 10))
}

// UserID returns the stored user id in decimal form or "".
func (m *Manager) UserID(ctx context.Context) (string, error) {
	return m.get(ctx, KeyUserID)
}

func (m *Manager) SetUserType(ctx context.Context, t models.UserType) error {
	return m.set(ctx, KeyUserType, string(t))
}

func (m *Manager) UserType(ctx context.Context) (models.UserType, error) {
	v, err := m.get(ctx, KeyUserType)
	return models.UserType(v), err
}

func (m *Manager) SetUserName(ctx context.Context, name string) error {
	return m.set(ctx, KeyUserName, name)
}

func (m *Manager) UserName(ctx context.Context) (string, error) {
	return m.get(ctx, KeyUserName)
}

// SetUser stores v as the JSON user blob.
func (m *Manager) SetUser(ctx context.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return m.set(ctx, KeyUser, string(b))
}

// User decodes the JSON user blob into v. It reports false when no blob is
// stored.
func (m *Manager) User(ctx context.Context, v any) (bool, error) {
	raw, err := m.get(ctx, KeyUser)
	if err != nil || raw == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode user: %w", err)
	}
	return true, nil
}

// ActorID is the id recorded as the author of created events, projects and
// status changes: the user blob id, then the stored user id, then 1.
func (m *Manager) ActorID(ctx context.Context) (int64, error) {
	var blob struct {
		ID int64 `json:"id"`
	}
	ok, err := m.User(ctx, &blob)
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			return 0, err
		}
	}
	if ok && blob.ID != 0 {
		return blob.ID, nil
	}

	raw, err := m.UserID(ctx)
	if err != nil {
		return 0, err
	}
	if id, perr := strconv.ParseInt(raw, 10, 64); perr == nil && id != 0 {
		return id, nil
	}
	return defaultActorID, nil
}

// Save stores everything a login or registration response carries.
func (m *Manager) Save(ctx context.Context, tok models.TokenResponse) error {
	if err := m.SetAuthToken(ctx, tok.AccessToken); err != nil {
		return err
	}
	if err := m.SetUserID(ctx, tok.UserID); err != nil {
		return err
	}
	if err := m.SetUserType(ctx, tok.UserType); err != nil {
		return err
	}
	if err := m.SetUserName(ctx, tok.Name); err != nil {
		return err
	}
	return m.SetUser(ctx, models.User{ID: tok.UserID, UserType: tok.UserType, Name: tok.Name})
}

// Clear removes every session key. It keeps going after a failed removal and
// returns the joined errors.
func (m *Manager) Clear(ctx context.Context) error {
	var errs []error
	for _, k := range Keys {
		if err := m.store.Remove(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
