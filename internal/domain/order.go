package domain

import (
	"encoding/json"
	"time"
)

// Order is a stored order. Items are kept wholesale as the JSON payload the
// client submitted; there is no per-item table.
type Order struct {
	ID        int64           `json:"id"`
	UserID    *string         `json:"user_id"`
	Total     float64         `json:"total"`
	Items     json.RawMessage `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}
