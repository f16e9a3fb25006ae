package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FunSlots_Go/internal/domain"
	"github.com/osse101/FunSlots_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to tell the client
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgSessionNotFound    = "Session not found. Start a new game."
	ErrMsgInvalidInput       = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Anything unrecognised becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInput
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs a failed service call and writes the mapped error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Info(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
