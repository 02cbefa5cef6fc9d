package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known storage keys. These mirror what the storefront persists on
// the client: the cart, UI preferences and the demo guest profile.
const (
	KeyCart     = "streetwear_cart"
	KeyTheme    = "lufian_theme"
	KeyLanguage = "lufian_language"
	KeyUser     = "lufian_user"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("localstore: key not found")

// Store is a small file-backed key/value store holding JSON documents,
// one file per key. Writes are synchronous and whole-value, reads
// return the last written value.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Get reads the value stored under key into v. Returns ErrNotFound when
// the key has never been written; a corrupt file surfaces as a JSON error
// so callers can decide to fall back.
func (s *Store) Get(key string, v interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode key %s: %w", key, err)
	}
	return nil
}

// Put writes v under key, replacing any previous value. The write goes
// through a temp file and rename so a crash never leaves a torn value.
func (s *Store) Put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode key %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
