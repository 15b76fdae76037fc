// Package redisstore persists the cart in Redis under the shared slot key.
package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/thabani29/electronic/internal/cart"
)

// Store keeps the cart under a single Redis key with no expiry, matching the
// durability of the file-backed store.
type Store struct {
	client *redis.Client
}

// New creates a Redis-backed cart store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load reads the saved cart bytes.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, cart.Slot).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, cart.ErrNoCart
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}
	return data, nil
}

// Save overwrites the cart bytes.
func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, cart.Slot, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}
