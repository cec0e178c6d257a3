package session

import (
	"context"
	"crypto/cipher"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// DefaultFile is the session file name used when no path is configured.
const DefaultFile = "session.json"

// checkValue is sealed into every sealed file so a wrong key is caught at
// open time.
const checkValue = "gramudyog-session"

// ErrWrongKey is returned by OpenFileStore when the key or passphrase does
// not open a sealed file.
var ErrWrongKey = errors.New("session: wrong key or passphrase for sealed file")

// fileData is the on-disk layout of a FileStore.
type fileData struct {
	Sealed bool              `json:"sealed,omitempty"`
	Salt   []byte            `json:"salt,omitempty"`
	Check  string            `json:"check,omitempty"`
	Values map[string]string `json:"values"`
}

// FileStore is a Storage persisted as a JSON file. Every mutation rewrites
// the file. When a key or passphrase is configured values are sealed with
// AES-GCM; keys stay readable.
type FileStore struct {
	path string
	aead cipher.AEAD

	mu   sync.Mutex
	data fileData
}

// FileOption configures OpenFileStore.
type FileOption func(*fileOptions)

type fileOptions struct {
	key        []byte
	passphrase string
}

// WithKey seals values with a cipher derived from key material.
func WithKey(key []byte) FileOption {
	return func(o *fileOptions) { o.key = key }
}

// WithPassphrase seals values with a cipher derived from passphrase and a
// per-file random salt.
func WithPassphrase(passphrase string) FileOption {
	return func(o *fileOptions) { o.passphrase = passphrase }
}

// OpenFileStore loads the session file at path, creating an empty store when
// the file does not exist yet.
func OpenFileStore(path string, opts ...FileOption) (*FileStore, error) {
	if path == "" {
		path = DefaultFile
	}
	var o fileOptions
	for _, opt := range opts {
		opt(&o)
	}

	fs := &FileStore{path: path, data: fileData{Values: map[string]string{}}}
	if err := fs.load(); err != nil {
		return nil, err
	}

	switch {
	case len(o.key) > 0:
		aead, err := NewAEADFromKey(o.key)
		if err != nil {
			return nil, err
		}
		fs.aead = aead
	case o.passphrase != "":
		if len(fs.data.Salt) == 0 {
			salt, err := newSalt()
			if err != nil {
				return nil, err
			}
			fs.data.Salt = salt
		}
		aead, err := NewAEADFromPassphrase(o.passphrase, fs.data.Salt)
		if err != nil {
			return nil, err
		}
		fs.aead = aead
	}

	if fs.data.Sealed && fs.aead == nil {
		return nil, fmt.Errorf("session file %s is sealed: key or passphrase required", path)
	}
	if !fs.data.Sealed && fs.aead != nil && len(fs.data.Values) > 0 {
		return nil, fmt.Errorf("session file %s is not sealed: remove it or drop the key", path)
	}
	fs.data.Sealed = fs.aead != nil
	if fs.aead != nil {
		if err := fs.verifyKey(); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// verifyKey opens the check value, or any stored value of a file written
// before check values existed, and seals a fresh check value when the file
// has none.
func (s *FileStore) verifyKey() error {
	probe := s.data.Check
	if probe == "" {
		for _, v := range s.data.Values {
			probe = v
			break
		}
	}
	if probe != "" {
		plain, err := open(s.aead, probe)
		if err != nil || (s.data.Check != "" && plain != checkValue) {
			return fmt.Errorf("%w: %s", ErrWrongKey, s.path)
		}
	}
	if s.data.Check == "" {
		check, err := seal(s.aead, checkValue)
		if err != nil {
			return err
		}
		s.data.Check = check
	}
	return nil
}

func (s *FileStore) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.data); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	if s.data.Values == nil {
		s.data.Values = map[string]string{}
	}
	return nil
}

// save writes values through a temp file and rename so a crash never
// leaves a truncated session behind. Callers hold s.mu and commit values to
// s.data only after save succeeds.
func (s *FileStore) save(values map[string]string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	d := s.data
	d.Values = values
	if err := json.NewEncoder(tmp).Encode(&d); err != nil {
		tmp.Close()
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	if s.aead == nil {
		return v, nil
	}
	return open(s.aead, v)
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aead != nil {
		sealed, err := seal(s.aead, value)
		if err != nil {
			return err
		}
		value = sealed
	}
	values := maps.Clone(s.data.Values)
	values[key] = value
	if err := s.save(values); err != nil {
		return err
	}
	s.data.Values = values
	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Values[key]; !ok {
		return nil
	}
	values := maps.Clone(s.data.Values)
	delete(values, key)
	if err := s.save(values); err != nil {
		return err
	}
	s.data.Values = values
	return nil
}
