package repository

import (
	"context"

	"github.com/thabani29/electronic/internal/domain"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// List returns all products in catalog order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its ID.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create inserts a new product and fills in its generated ID.
	Create(ctx context.Context, p *domain.Product) error
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create inserts a new order and fills in its generated ID.
	Create(ctx context.Context, o *domain.Order) error
}
