package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabani29/electronic/internal/cart"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := New(path)
	ctx := context.Background()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, cart.ErrNoCart)

	payload := []byte(`[{"product_id":"1","name":"Mouse","price":49.99,"qty":2,"image":""}]`)
	require.NoError(t, s.Save(ctx, payload))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "cart.json")
	s := New(path)

	require.NoError(t, s.Save(context.Background(), []byte("[]")))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := New(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`["old"]`)))
	require.NoError(t, s.Save(ctx, []byte(`["new"]`)))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `["new"]`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
