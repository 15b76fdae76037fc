package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/thabani29/electronic/internal/domain"
	"github.com/thabani29/electronic/internal/repository"
	apperrors "github.com/thabani29/electronic/pkg/errors"
	"github.com/thabani29/electronic/pkg/httputil"
)

// OrderHandler accepts order submissions from the storefront.
type OrderHandler struct {
	repo   repository.OrderRepository
	logger *slog.Logger
}

func NewOrderHandler(repo repository.OrderRepository, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, logger: logger}
}

// Order intake is deliberately permissive: user_id may be absent, items are
// stored as submitted. The storefront only needs the order id back.
type createOrderRequest struct {
	UserID *string         `json:"user_id"`
	Total  float64         `json:"total"`
	Items  json.RawMessage `json:"items"`
}

type createOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body"), h.logger)
		return
	}

	order := &domain.Order{
		UserID: req.UserID,
		Total:  req.Total,
		Items:  req.Items,
	}
	if err := h.repo.Create(r.Context(), order); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.InfoContext(r.Context(), "order placed",
		slog.Int64("order_id", order.ID),
		slog.Float64("total", order.Total),
	)
	httputil.WriteJSON(w, http.StatusCreated, createOrderResponse{
		Success: true,
		OrderID: order.ID,
	})
}
