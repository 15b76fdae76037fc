// Package checkout submits the cart as an order to the store backend.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync/atomic"

	"github.com/thabani29/electronic/internal/cart"
)

// Doer is the HTTP client surface the submitter needs. Both httpclient.Client
// and httpclient.CircuitBreakerClient satisfy it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// User-facing result messages.
const (
	MsgEmptyCart    = "Cart is empty"
	MsgPending      = "Order already in progress"
	MsgNetworkError = "Network or server error. Please try again."
)

// Result is the outcome of a checkout attempt. Message is always safe to show
// to the user.
type Result struct {
	OK      bool
	OrderID string
	Message string
}

// Submitter posts orders to the backend. A submitter guards against
// concurrent submissions: while one attempt is in flight, further calls
// return immediately without touching the network.
type Submitter struct {
	client  Doer
	baseURL string
	logger  *slog.Logger
	pending atomic.Bool
}

// New creates a submitter for the API at baseURL.
func New(client Doer, baseURL string, logger *slog.Logger) *Submitter {
	return &Submitter{client: client, baseURL: baseURL, logger: logger}
}

type orderRequest struct {
	UserID *string     `json:"user_id"`
	Total  float64     `json:"total"`
	Items  []cart.Line `json:"items"`
}

// orderResponse decodes the backend reply permissively: the order id may
// arrive under "orderId" or "id", as a number or a string.
type orderResponse struct {
	Success bool            `json:"success"`
	OrderID json.RawMessage `json:"orderId"`
	ID      json.RawMessage `json:"id"`
}

// Submit snapshots the cart, posts it as an order and clears the cart on
// success. The cart is left untouched on any failure so the user can retry.
func (s *Submitter) Submit(ctx context.Context, engine *cart.Engine) Result {
	lines := engine.Lines()
	if len(lines) == 0 {
		return Result{Message: MsgEmptyCart}
	}

	if !s.pending.CompareAndSwap(false, true) {
		return Result{Message: MsgPending}
	}
	defer s.pending.Store(false)

	payload := orderRequest{
		UserID: nil,
		Total:  round2(total(lines)),
		Items:  lines,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to encode order", slog.String("error", err.Error()))
		return Result{Message: MsgNetworkError}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return Result{Message: MsgNetworkError}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		s.logger.Warn("order submission failed", slog.String("error", err.Error()))
		return Result{Message: MsgNetworkError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("order rejected", slog.Int("status", resp.StatusCode))
		return Result{Message: MsgNetworkError}
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		// A 2xx whose body cannot be decoded means we do not know whether
		// the order was recorded. Keep the cart so the user can retry.
		s.logger.Warn("order response unreadable", slog.String("error", err.Error()))
		return Result{Message: MsgNetworkError}
	}

	orderID := order.orderID()

	engine.Clear(ctx)
	s.logger.Info("order placed", slog.String("order_id", orderID))
	return Result{
		OK:      true,
		OrderID: orderID,
		Message: fmt.Sprintf("Order placed! Order ID: %s", orderID),
	}
}

// orderID extracts the order id from a decoded response, falling back to
// "N/A" when neither field carries one.
func (r orderResponse) orderID() string {
	raw := r.OrderID
	if len(raw) == 0 {
		raw = r.ID
	}
	if len(raw) == 0 {
		return "N/A"
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
		return asString
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return "N/A"
}

func total(lines []cart.Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Qty)
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
