package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabani29/electronic/internal/domain"
	"github.com/thabani29/electronic/pkg/database"
)

func newOrderRepo(t *testing.T) (*OrderRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewOrderRepository(mock), mock
}

func TestOrderRepository_Create(t *testing.T) {
	repo, mock := newOrderRepo(t)
	now := time.Now().UTC()

	items := json.RawMessage(`[{"product_id":"1","name":"Mouse","price":49.99,"qty":2}]`)

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs((*string)(nil), 99.98, items).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(77), now))

	o := &domain.Order{UserID: nil, Total: 99.98, Items: items}
	require.NoError(t, repo.Create(context.Background(), o))
	assert.Equal(t, int64(77), o.ID)
	assert.Equal(t, now, o.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_DefaultsItems(t *testing.T) {
	repo, mock := newOrderRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs((*string)(nil), 0.0, json.RawMessage(`[]`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(78), now))

	o := &domain.Order{}
	require.NoError(t, repo.Create(context.Background(), o))
	assert.Equal(t, int64(78), o.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_Error(t *testing.T) {
	repo, mock := newOrderRepo(t)

	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnError(errors.New("deadlock detected"))

	o := &domain.Order{Total: 10, Items: json.RawMessage(`[]`)}
	err := repo.Create(context.Background(), o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order")
}
