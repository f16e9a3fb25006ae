package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FunSlots_Go/internal/logger"
)

// URLParamSessionID is the chi route parameter holding the session ID
const URLParamSessionID = "sessionID"

// SessionPathParams holds the validated path parameters of session routes
type SessionPathParams struct {
	SessionID string `validate:"required,uuid4"`
}

// GetSessionID reads and validates the session ID route parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	sessionID, ok := GetSessionID(w, r)
//	if !ok {
//	    return
//	}
func GetSessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	params := SessionPathParams{SessionID: chi.URLParam(r, URLParamSessionID)}

	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Debug("Rejected session ID", "session_id", params.SessionID, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return "", false
	}

	return params.SessionID, true
}
