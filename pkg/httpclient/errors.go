package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/thabani29/electronic/pkg/errors"
)

// errorResponse is the flat error body the store API returns.
type errorResponse struct {
	Error string `json:"error"`
}

// ParseResponseError turns a non-2xx response into an error, preserving the
// server's message where one is present. It consumes and closes the body.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", serviceName, resp.StatusCode, err)
	}

	message := ""
	var body errorResponse
	if json.Unmarshal(bodyBytes, &body) == nil {
		message = body.Error
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound(serviceName, message)
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && message != "":
		return apperrors.InvalidInput(fmt.Sprintf("%s: %s", serviceName, message))
	default:
		return fmt.Errorf("%s returned status %d: %s", serviceName, resp.StatusCode, string(bodyBytes))
	}
}
