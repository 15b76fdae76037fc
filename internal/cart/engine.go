package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Engine holds the in-memory cart and keeps the store in sync after every
// mutation. Persistence failures never fail the mutation: the in-memory cart
// is the source of truth for the running session and storage is best effort.
type Engine struct {
	mu     sync.Mutex
	lines  []Line
	store  Store
	logger *slog.Logger
}

// NewEngine creates an engine backed by the given store and restores any
// previously saved cart. A missing or corrupt saved cart yields an empty one.
func NewEngine(ctx context.Context, store Store, logger *slog.Logger) *Engine {
	e := &Engine{store: store, logger: logger}
	e.restore(ctx)
	return e
}

func (e *Engine) restore(ctx context.Context) {
	data, err := e.store.Load(ctx)
	if err != nil {
		if err != ErrNoCart {
			e.logger.Warn("failed to load saved cart, starting empty",
				slog.String("error", err.Error()),
			)
		}
		return
	}
	e.lines = decodeLines(data, e.logger)
}

// decodeLines turns stored bytes into normalized cart lines. Corrupt data
// yields an empty cart, unusable entries are dropped, duplicate product ids
// are merged.
func decodeLines(data []byte, logger *slog.Logger) []Line {
	var raw []rawLine
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("saved cart is corrupt, starting empty",
			slog.String("error", err.Error()),
		)
		return nil
	}

	var lines []Line
	for _, r := range raw {
		line, ok := r.toLine()
		if !ok {
			continue
		}
		lines = mergeLine(lines, line)
	}
	return lines
}

// mergeLine appends the line, or adds its quantity to an existing line with
// the same product id.
func mergeLine(lines []Line, line Line) []Line {
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Qty += line.Qty
			return lines
		}
	}
	return append(lines, line)
}

// Add puts the line in the cart, merging quantities if the product is already
// present. Lines without a derivable product id are ignored.
func (e *Engine) Add(ctx context.Context, line Line) {
	normalized, ok := line.normalize()
	if !ok {
		e.logger.Warn("ignoring cart line without product id",
			slog.String("name", line.Name),
		)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = mergeLine(e.lines, normalized)
	e.persist(ctx)
}

// Remove deletes the line with the given product id. Removing an absent
// product is a no-op.
func (e *Engine) Remove(ctx context.Context, productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persist(ctx)
			return
		}
	}
}

// UpdateQty sets the quantity for the given product, clamped to a floor of 1.
// Unknown products are a no-op.
func (e *Engine) UpdateQty(ctx context.Context, productID string, qty int) {
	if qty < 1 {
		qty = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines[i].Qty = qty
			e.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
	e.persist(ctx)
}

// Lines returns a copy of the cart contents.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// TotalItems returns the sum of quantities across all lines.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	var n int
	for _, l := range e.lines {
		n += l.Qty
	}
	return n
}

// TotalPrice returns the cart total formatted with two decimal places.
// An empty cart totals "0.00".
func (e *Engine) TotalPrice() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fmt.Sprintf("%.2f", e.totalLocked())
}

// Total returns the numeric cart total.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalLocked()
}

func (e *Engine) totalLocked() float64 {
	var total float64
	for _, l := range e.lines {
		total += l.Price * float64(l.Qty)
	}
	return total
}

// persist writes the cart to the store. Callers must hold the mutex.
func (e *Engine) persist(ctx context.Context) {
	lines := e.lines
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		e.logger.Warn("failed to encode cart", slog.String("error", err.Error()))
		return
	}
	if err := e.store.Save(ctx, data); err != nil {
		e.logger.Warn("failed to save cart", slog.String("error", err.Error()))
	}
}
