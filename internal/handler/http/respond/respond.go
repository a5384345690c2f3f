// Package respond provides utilities for sending HTTP responses in JSON format.
// Internal errors are sanitized before they are logged and never reach the client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"article-desk/internal/domain/entity"
)

// ErrorBody is the JSON shape of every error response.
// Fields is set only for validation failures.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダー送信済みのためログのみ
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// SafeError writes err as a JSON error response.
// Client errors (4xx) carry err's message; server errors are logged with
// sensitive values masked and answered with "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code < http.StatusInternalServerError {
		JSON(w, code, ErrorBody{Error: err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorBody{Error: "internal server error"})
}

// Validation writes a 400 response listing the first message of every invalid field.
func Validation(w http.ResponseWriter, ve entity.ValidationErrors) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		Error:  "validation failed",
		Fields: ve.Messages(),
	})
}
