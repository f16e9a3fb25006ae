package bootstrap

// Log messages for startup
const (
	LogMsgStartingFunSlots    = "Starting Fun Slots"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgServiceShutdownFailed = " service shutdown failed"
	LogMsgServerStopped         = "Server stopped"
)

// Service names used in shutdown logging
const (
	ServiceNameSession = "session"
)
