// Package filestore persists the cart as a JSON file on disk.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thabani29/electronic/internal/cart"
)

// Store keeps the cart in a single file, written atomically.
type Store struct {
	path string
}

// New creates a file-backed cart store at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user cart file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, cart.Slot+".json"), nil
}

// Load reads the saved cart bytes.
func (s *Store) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cart.ErrNoCart
		}
		return nil, fmt.Errorf("read cart file: %w", err)
	}
	return data, nil
}

// Save writes the cart bytes via a temp file and atomic rename, so a crash
// mid-write never leaves a truncated cart behind.
func (s *Store) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("create temp cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cart file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store cart file: %w", err)
	}
	return nil
}
