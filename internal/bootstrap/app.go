package bootstrap

import (
	"log/slog"

	"github.com/osse101/FunSlots_Go/internal/config"
	"github.com/osse101/FunSlots_Go/internal/server"
	"github.com/osse101/FunSlots_Go/internal/session"
	"github.com/osse101/FunSlots_Go/internal/slots"
)

// App holds the wired application components
type App struct {
	Server         *server.Server
	SessionService session.Service
}

// NewApp builds the slot engine, the session store and the HTTP server from cfg
func NewApp(cfg *config.Config) *App {
	engine := slots.NewEngine(slots.DefaultRules(), nil)

	sessionService := session.NewService(engine, session.CacheConfig{
		Size: cfg.SessionCacheSize,
		TTL:  cfg.SessionTTL,
	})

	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
	}, sessionService)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"trusted_proxies", len(cfg.TrustedProxies),
		"rate_limit", cfg.RateLimit)

	return &App{
		Server:         srv,
		SessionService: sessionService,
	}
}
