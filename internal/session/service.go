package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FunSlots_Go/internal/concurrency"
	"github.com/osse101/FunSlots_Go/internal/domain"
	"github.com/osse101/FunSlots_Go/internal/logger"
	"github.com/osse101/FunSlots_Go/internal/metrics"
	"github.com/osse101/FunSlots_Go/internal/slots"
)

// Service hosts slot machine sessions. Each session owns one GameState;
// requests for the same session are processed one at a time.
type Service interface {
	Create(ctx context.Context) (*domain.SessionSnapshot, error)
	Get(ctx context.Context, id string) (*domain.SessionSnapshot, error)
	Spin(ctx context.Context, id string) (*domain.SpinResult, error)
	Reset(ctx context.Context, id string) (*domain.SessionSnapshot, error)
	End(ctx context.Context, id string) error
	Paytable() domain.Paytable
	CheckHealth(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// ErrStoreClosed is reported by CheckHealth after Shutdown
var ErrStoreClosed = errors.New("session store closed")

// CacheConfig bounds the in-memory session store
type CacheConfig struct {
	Size int           // Maximum live sessions; least recently used are dropped first
	TTL  time.Duration // Idle time before a session expires
}

// DefaultCacheConfig returns the default session store bounds
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: 10000,
		TTL:  30 * time.Minute,
	}
}

type entry struct {
	state     *domain.GameState
	createdAt time.Time
	evicted   atomic.Bool // Set once the store drops the entry; never cleared
}

func (e *entry) snapshot(id string) domain.SessionSnapshot {
	return domain.SessionSnapshot{
		ID:        id,
		State:     e.state.Clone(),
		CreatedAt: e.createdAt,
	}
}

type service struct {
	engine *slots.Engine
	store  *expirable.LRU[string, *entry]
	locks  *concurrency.LockManager
	newID  func() string
	closed atomic.Bool

	// storeMu orders the writes that can evict a session (Add, Remove, Purge)
	// against the expiry refresh, so a dropped entry is never added back
	storeMu sync.Mutex
}

// NewService creates a session service backed by an expiring LRU store
func NewService(engine *slots.Engine, cfg CacheConfig) Service {
	s := &service{
		engine: engine,
		locks:  concurrency.NewLockManager(),
		newID:  uuid.NewString,
	}
	// onEvict runs under the store's lock: it must not call back into the store
	s.store = expirable.NewLRU[string, *entry](cfg.Size, func(id string, e *entry) {
		if e.evicted.Swap(true) {
			return
		}
		s.locks.Remove(id)
		metrics.SessionsActive.Dec()
	}, cfg.TTL)
	return s
}

// Create starts a new session with a fresh GameState
func (s *service) Create(ctx context.Context) (*domain.SessionSnapshot, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	id := s.newID()
	e := &entry{
		state:     s.engine.NewState(),
		createdAt: time.Now().UTC(),
	}

	metrics.SessionsCreated.Inc()
	metrics.SessionsActive.Inc()
	s.storeMu.Lock()
	s.store.Add(id, e)
	s.storeMu.Unlock()

	logger.FromContext(logger.WithSessionID(ctx, id)).Info("Session created")

	snap := e.snapshot(id)
	return &snap, nil
}

// Get returns a copy of the session state
func (s *service) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	var snap domain.SessionSnapshot
	err := s.withSession(id, func(e *entry) {
		snap = e.snapshot(id)
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Spin takes one spin for the session. Insufficient funds is not an error:
// the outcome comes back with Accepted=false.
func (s *service) Spin(ctx context.Context, id string) (*domain.SpinResult, error) {
	log := logger.FromContext(logger.WithSessionID(ctx, id))

	var result domain.SpinResult
	err := s.withSession(id, func(e *entry) {
		result.Outcome = s.engine.Spin(e.state)
		result.Session = e.snapshot(id)
	})
	if err != nil {
		return nil, err
	}

	recordSpin(result.Outcome)

	if !result.Outcome.Accepted {
		log.Info("Spin refused", "balance", result.Outcome.Balance)
	} else {
		log.Debug("Spin resolved",
			"outcome", slots.Classify(result.Outcome),
			"match_count", result.Outcome.MatchCount,
			"reward", result.Outcome.Reward,
			"forced_jackpot", result.Outcome.ForcedJackpot,
			"balance", result.Outcome.Balance,
			"spin_count", result.Outcome.SpinCount)
	}

	return &result, nil
}

// Reset restores the session to its starting state
func (s *service) Reset(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	var snap domain.SessionSnapshot
	err := s.withSession(id, func(e *entry) {
		s.engine.Reset(e.state)
		snap = e.snapshot(id)
	})
	if err != nil {
		return nil, err
	}

	metrics.ResetsTotal.Inc()
	logger.FromContext(logger.WithSessionID(ctx, id)).Info("Session reset")

	return &snap, nil
}

// End discards the session
func (s *service) End(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty session id", domain.ErrInvalidInput)
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	s.storeMu.Lock()
	removed := s.store.Remove(id)
	s.storeMu.Unlock()

	if !removed {
		s.locks.Remove(id)
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	logger.FromContext(logger.WithSessionID(ctx, id)).Info("Session ended")
	return nil
}

// Paytable describes the machine every session plays on
func (s *service) Paytable() domain.Paytable {
	return s.engine.Paytable()
}

// CheckHealth reports whether the service can accept sessions
func (s *service) CheckHealth(ctx context.Context) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	return ctx.Err()
}

// Shutdown drops all sessions
func (s *service) Shutdown(ctx context.Context) error {
	s.closed.Store(true)
	s.storeMu.Lock()
	s.store.Purge()
	s.storeMu.Unlock()
	return ctx.Err()
}

// withSession runs fn with the session's lock held. fn may mutate the state;
// the session's idle expiry is refreshed afterwards. A session evicted while
// fn ran stays gone and the call reports it as not found.
func (s *service) withSession(id string, fn func(e *entry)) error {
	if id == "" {
		return fmt.Errorf("%w: empty session id", domain.ErrInvalidInput)
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	e, ok := s.store.Get(id)
	if !ok || e.evicted.Load() {
		s.locks.Remove(id)
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	fn(e)

	if !s.refresh(id, e) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return nil
}

// refresh re-adds a live entry to restart its idle expiry. The state is
// already updated through the pointer; only the TTL needs the Add.
func (s *service) refresh(id string, e *entry) bool {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	if e.evicted.Load() {
		return false
	}
	s.store.Add(id, e)

	// The expiry janitor does not take storeMu and may have dropped the entry
	// between the check and the Add: take it back out. onEvict already ran.
	if e.evicted.Load() {
		s.store.Remove(id)
		return false
	}
	return true
}

// recordSpin updates the game metrics for one spin request
func recordSpin(outcome domain.SpinOutcome) {
	metrics.SpinsTotal.WithLabelValues(slots.Classify(outcome)).Inc()
	if !outcome.Accepted {
		return
	}
	metrics.CoinsWagered.Add(float64(outcome.Cost))
	if outcome.Reward > 0 {
		metrics.CoinsAwarded.Add(float64(outcome.Reward))
	}
	if outcome.ForcedJackpot {
		metrics.ForcedJackpots.Inc()
	}
}
