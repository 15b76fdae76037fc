package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/thabani29/electronic/pkg/errors"
)

// ErrorBody is the wire shape for error responses. The storefront API keeps
// the original flat format: {"error": "message"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps the error to an HTTP status and writes a flat error body.
// Validation and not-found errors surface their message; everything else is
// reported as a generic server error and logged.
func WriteError(w http.ResponseWriter, r *http.Request, err error, l *slog.Logger) {
	status := apperrors.HTTPStatus(err)

	message := "Server error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		message = appErr.Message
	}

	if status == http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, ErrorBody{Error: message})
}
