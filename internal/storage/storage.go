package storage

import (
	"context"
	"io"
)

// Storage defines the interface for image blob storage.
type Storage interface {
	// Save stores the blob under the given file name and returns its public URL.
	Save(ctx context.Context, name string, data io.Reader) (string, error)

	// Delete removes a stored blob by file name.
	Delete(ctx context.Context, name string) error
}
