package handler

import (
	"net/http"

	"github.com/osse101/FunSlots_Go/internal/logger"
	"github.com/osse101/FunSlots_Go/internal/session"
)

// SessionHandler handles game session HTTP requests
type SessionHandler struct {
	service session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service session.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// HandleCreateSession starts a new game
// @Summary Start a game session
// @Description Create a session with the starting balance and placeholder reels
// @Tags sessions
// @Produce json
// @Success 201 {object} domain.SessionSnapshot
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, OpCreateSession, err)
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

// HandleGetSession returns the current game state
// @Summary Get a game session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} domain.SessionSnapshot
// @Failure 400 {object} ValidationErrorResponse "Malformed session ID"
// @Failure 404 {object} ErrorResponse "Unknown or expired session"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetSession, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleSpin takes one spin. A spin refused for insufficient funds is still a
// 200: the outcome says accepted=false and the state message explains why.
// @Summary Spin the reels
// @Description Take one spin. Insufficient funds returns 200 with outcome.accepted=false.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ValidationErrorResponse "Malformed session ID"
// @Failure 404 {object} ErrorResponse "Unknown or expired session"
// @Router /sessions/{sessionID}/spin [post]
func (h *SessionHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(w, r)
	if !ok {
		return
	}

	ctx := logger.WithSessionID(r.Context(), id)
	result, err := h.service.Spin(ctx, id)
	if err != nil {
		respondServiceError(w, r, OpSpin, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleReset restores the starting balance and reels
// @Summary Reset a game session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID (UUID)"
// @Success 200 {object} domain.SessionSnapshot
// @Failure 400 {object} ValidationErrorResponse "Malformed session ID"
// @Failure 404 {object} ErrorResponse "Unknown or expired session"
// @Router /sessions/{sessionID}/reset [post]
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.service.Reset(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpReset, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleEndSession discards the game
// @Summary End a game session
// @Tags sessions
// @Param sessionID path string true "Session ID (UUID)"
// @Success 204
// @Failure 400 {object} ValidationErrorResponse "Malformed session ID"
// @Failure 404 {object} ErrorResponse "Unknown or expired session"
// @Router /sessions/{sessionID} [delete]
func (h *SessionHandler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		respondServiceError(w, r, OpEndSession, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetPaytable returns symbol odds, rewards and game constants
// @Summary Get the paytable
// @Tags paytable
// @Produce json
// @Success 200 {object} domain.Paytable
// @Router /paytable [get]
func (h *SessionHandler) HandleGetPaytable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Paytable())
}
