package cart

import (
	"context"
	"errors"
)

// Slot is the single named slot all cart backends persist under.
const Slot = "electronic_store_cart_v1"

// ErrNoCart is returned by Store.Load when nothing has been saved yet.
var ErrNoCart = errors.New("no saved cart")

// Store persists the serialized cart. Implementations deal in raw bytes;
// decoding and normalization happen in the engine so every backend gets the
// same resilience against corrupt data.
type Store interface {
	// Load returns the saved cart bytes, or ErrNoCart if the slot is empty.
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the slot with the given bytes.
	Save(ctx context.Context, data []byte) error
}
