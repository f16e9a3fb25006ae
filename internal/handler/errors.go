package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"
)

// Log operation names
const (
	OpCreateSession = "Create session"
	OpGetSession    = "Get session"
	OpSpin          = "Spin"
	OpReset         = "Reset"
	OpEndSession    = "End session"
)
