package bootstrap

import (
	"context"
	"log/slog"
)

// stoppable is the part of the HTTP server that shutdown needs
type stoppable interface {
	Stop(ctx context.Context) error
}

// shutdownableService is implemented by services holding in-memory state
type shutdownableService interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         stoppable
	SessionService shutdownableService
}

// GracefulShutdown performs graceful shutdown of all application components.
// The HTTP server stops accepting requests and drains first, then the session
// store is closed.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	shutdownService(ctx, ServiceNameSession, components.SessionService)

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if service == nil {
		return
	}
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
