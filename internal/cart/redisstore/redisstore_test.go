package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabani29/electronic/internal/cart"
)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client), mr
}

func TestStore_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, cart.ErrNoCart)

	payload := []byte(`[{"product_id":"1","name":"Mouse","price":49.99,"qty":2,"image":""}]`)
	require.NoError(t, s.Save(ctx, payload))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStore_UsesSlotKeyWithoutTTL(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("[]")))

	val, err := mr.Get(cart.Slot)
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
	assert.Zero(t, mr.TTL(cart.Slot))
}

func TestStore_LoadError(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, cart.ErrNoCart)
}
