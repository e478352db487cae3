package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// maxErrorBody bounds how much of a non-JSON error body ends up in a message.
const maxErrorBody = 200

// errorResponse is the backend's error body.
type errorResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// errorMessage extracts a displayable message from an error body.
// JSON bodies use message, then error; anything else is used as plain text.
func errorMessage(body []byte) (message, path string) {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		switch {
		case resp.Message != "":
			return resp.Message, resp.Path
		case resp.Error != "":
			return resp.Error, resp.Path
		}
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "<") {
		// Unrecognised JSON or an HTML error page.
		return "", ""
	}
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
		for !utf8.ValidString(text) {
			text = text[:len(text)-1]
		}
		text += "..."
	}
	return text, ""
}

// newAPIError builds the error for a non-2xx response.
func newAPIError(status int, requestPath string, body []byte) *domain.APIError {
	message, path := errorMessage(body)
	if message == "" {
		message = http.StatusText(status)
	}
	if path == "" {
		path = requestPath
	}
	return &domain.APIError{Status: status, Message: message, Path: path}
}

// isAuthFailure reports whether status triggers the refresh-and-retry sequence.
func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
