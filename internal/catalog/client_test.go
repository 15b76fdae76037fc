package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/thabani29/electronic/pkg/errors"
)

type plainDoer struct {
	client *http.Client
}

func (d *plainDoer) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return d.client.Do(req.WithContext(ctx))
}

func newClient(url string) *Client {
	return NewClient(&plainDoer{client: &http.Client{}}, url)
}

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"product_id":1,"name":"Wireless Mouse","description":"","price":49.99,"image":"","stock":12},
			{"product_id":2,"name":"Mechanical Keyboard","description":"","price":89.50,"image":"","stock":5}
		]`))
	}))
	defer srv.Close()

	products, err := newClient(srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ProductID)
	assert.Equal(t, 49.99, products[0].Price)
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"product_id":7,"name":"USB Hub","price":19.90}`))
	}))
	defer srv.Close()

	p, err := newClient(srv.URL).Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "USB Hub", p.Name)
}

func TestClient_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"product with id 99 not found"}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Get(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClient_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Server error"}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products returned status 500")
}
