package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thabani29/electronic/internal/domain"
	"github.com/thabani29/electronic/pkg/database"
)

// OrderRepository implements repository.OrderRepository using PostgreSQL.
type OrderRepository struct {
	pool database.DBTX
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool database.DBTX) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts a new order and fills in its generated ID.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	items := o.Items
	if len(items) == 0 {
		items = json.RawMessage(`[]`)
	}

	query := `
		INSERT INTO orders (user_id, total, items_json)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, o.UserID, o.Total, items).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}
