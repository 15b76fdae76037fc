package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage implements storage.Storage on the local filesystem. Files are
// written to a single uploads directory and served publicly under
// <baseURL>/uploads/<name>.
type Storage struct {
	dir     string
	baseURL string
}

// New creates a disk storage rooted at dir, creating it if needed.
func New(dir, baseURL string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir returns the directory files are stored in.
func (s *Storage) Dir() string {
	return s.dir
}

// Save writes the blob to disk via a temp file and atomic rename.
func (s *Storage) Save(_ context.Context, name string, data io.Reader) (string, error) {
	// File names are generated server-side, but reject separators anyway.
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	dst := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Delete removes a stored blob by file name.
func (s *Storage) Delete(_ context.Context, name string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}
