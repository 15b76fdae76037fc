package http

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/thabani29/electronic/internal/storage"
	apperrors "github.com/thabani29/electronic/pkg/errors"
	"github.com/thabani29/electronic/pkg/httputil"
)

// maxUploadSize caps product images at 5 MiB.
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// UploadHandler accepts product image uploads.
type UploadHandler struct {
	store  storage.Storage
	logger *slog.Logger
}

func NewUploadHandler(store storage.Storage, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

type uploadResponse struct {
	ImageURL string `json:"image_url"`
}

// Upload handles POST /api/upload. The image is sent as multipart form field
// "image". The stored name is server-generated; the client's file name and
// declared content type are ignored in favor of sniffing the bytes.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, _, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.WriteError(w, r, apperrors.InvalidInput("image exceeds 5MB limit"), h.logger)
			return
		}
		httputil.WriteError(w, r, apperrors.InvalidInput("missing image file"), h.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("unreadable image file"), h.logger)
		return
	}

	mtype := mimetype.Detect(data)
	if _, ok := allowedImageTypes[mtype.String()]; !ok {
		httputil.WriteError(w, r, apperrors.InvalidInput("unsupported image type"), h.logger)
		return
	}

	name := uuid.NewString() + mtype.Extension()
	url, err := h.store.Save(r.Context(), name, bytes.NewReader(data))
	if err != nil {
		httputil.WriteError(w, r, apperrors.Internal(err), h.logger)
		return
	}

	h.logger.InfoContext(r.Context(), "image uploaded",
		slog.String("file", name),
		slog.String("content_type", mtype.String()),
		slog.Int("bytes", len(data)),
	)
	httputil.WriteJSON(w, http.StatusCreated, uploadResponse{ImageURL: url})
}
