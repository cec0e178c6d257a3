package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileStore_FileNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	fs, err := OpenFileStore(path)
	require.NoError(t, err)
	_, err = fs.Get(context.Background(), KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "opening must not create the file")
}

func TestFileStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	fs, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyAuthToken, "abc"))
	require.NoError(t, fs.Set(ctx, KeyUserID, "7"))
	require.NoError(t, fs.Remove(ctx, KeyUserID))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, err := reopened.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	_, err = reopened.Get(ctx, KeyUserID)
	assert.ErrorIs(t, err, ErrNotFound)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".session-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStore_SealedWithKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	key := []byte("-----BEGIN TEST KEY-----")

	fs, err := OpenFileStore(path, WithKey(key))
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyAuthToken, "super-secret-token"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "super-secret-token"))
	assert.Contains(t, string(raw), KeyAuthToken)

	reopened, err := OpenFileStore(path, WithKey(key))
	require.NoError(t, err)
	v, err := reopened.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "super-secret-token", v)

	_, err = OpenFileStore(path, WithKey([]byte("other")))
	assert.ErrorIs(t, err, ErrWrongKey)

	_, err = OpenFileStore(path)
	assert.ErrorContains(t, err, "is sealed")
}

func TestFileStore_SealedWithPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	fs, err := OpenFileStore(path, WithPassphrase("correct horse"))
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyUserName, "Asha"))

	reopened, err := OpenFileStore(path, WithPassphrase("correct horse"))
	require.NoError(t, err)
	v, err := reopened.Get(ctx, KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Asha", v)

	_, err = OpenFileStore(path, WithPassphrase("battery staple"))
	assert.ErrorIs(t, err, ErrWrongKey)
}

func TestOpenFileStore_WrongPassphraseBeforeFirstValue(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	fs, err := OpenFileStore(path, WithPassphrase("right"))
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyAuthToken, "abc"))
	require.NoError(t, fs.Remove(ctx, KeyAuthToken))

	// The file holds no values, only the check value.
	_, err = OpenFileStore(path, WithPassphrase("wrong"))
	require.ErrorIs(t, err, ErrWrongKey)

	again, err := OpenFileStore(path, WithPassphrase("right"))
	require.NoError(t, err)
	_, err = again.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenFileStore_LegacySealedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	aead, err := NewAEADFromKey([]byte("k"))
	require.NoError(t, err)
	sealed, err := seal(aead, "abc")
	require.NoError(t, err)
	body := `{"sealed":true,"values":{"auth_token":"` + sealed + `"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err = OpenFileStore(path, WithKey([]byte("other")))
	assert.ErrorIs(t, err, ErrWrongKey)

	fs, err := OpenFileStore(path, WithKey([]byte("k")))
	require.NoError(t, err)
	v, err := fs.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestFileStore_FailedWriteKeepsState(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "state")
	require.NoError(t, os.Mkdir(dir, 0o700))

	fs, err := OpenFileStore(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyUserID, "7"))
	require.NoError(t, os.RemoveAll(dir))

	assert.Error(t, fs.Set(ctx, KeyAuthToken, "abc"))
	_, err = fs.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, fs.Remove(ctx, KeyUserID))
	v, err := fs.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestOpenFileStore_PlainFileWithKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	fs, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyAuthToken, "abc"))

	_, err = OpenFileStore(path, WithKey([]byte("k")))
	assert.ErrorContains(t, err, "is not sealed")
}

func TestOpenFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := OpenFileStore(path)
	assert.ErrorContains(t, err, "decode session file")
}

func TestNewAEADFromKey_Deterministic(t *testing.T) {
	a1, err := NewAEADFromKey([]byte("material"))
	require.NoError(t, err)
	a2, err := NewAEADFromKey([]byte("material"))
	require.NoError(t, err)

	sealed, err := seal(a1, "helloworld")
	require.NoError(t, err)
	plain, err := open(a2, sealed)
	require.NoError(t, err)
	assert.Equal(t, "helloworld", plain)

	_, err = NewAEADFromKey(nil)
	assert.Error(t, err)
}

func TestNewAEADFromPassphrase_Validation(t *testing.T) {
	_, err := NewAEADFromPassphrase("", make([]byte, saltLen))
	assert.Error(t, err)
	_, err = NewAEADFromPassphrase("pw", []byte("short"))
	assert.Error(t, err)
}

func TestOpen_Malformed(t *testing.T) {
	aead, err := NewAEADFromKey([]byte("material"))
	require.NoError(t, err)

	_, err = open(aead, "%%%")
	assert.ErrorContains(t, err, "decode sealed value")
	_, err = open(aead, "AAAA")
	assert.ErrorContains(t, err, "too short")
}
