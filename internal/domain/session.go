package domain

import "time"

// SessionSnapshot is a read-only copy of a session and its game state
type SessionSnapshot struct {
	ID        string    `json:"session_id"`
	State     GameState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// SpinResult pairs the session after a spin with the spin outcome
type SpinResult struct {
	Session SessionSnapshot `json:"session"`
	Outcome SpinOutcome     `json:"outcome"`
}
