package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mbii55/servio-admin-sub000/core/logger"
)

type schedulerOptions struct {
	refreshInterval time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// SchedulerOption configures a RefreshScheduler.
type SchedulerOption func(*schedulerOptions)

// WithRefreshInterval sets how often the scheduler renews the credential.
// Values <= 0 keep the default.
func WithRefreshInterval(interval time.Duration) SchedulerOption {
	return func(o *schedulerOptions) {
		if interval > 0 {
			o.refreshInterval = interval
		}
	}
}

// WithShutdownTimeout sets how long Stop waits for an in-flight renewal.
// Values <= 0 keep the default.
func WithShutdownTimeout(timeout time.Duration) SchedulerOption {
	return func(o *schedulerOptions) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

// WithSchedulerLogger sets the logger for scheduler lifecycle and tick events.
func WithSchedulerLogger(log *slog.Logger) SchedulerOption {
	return func(o *schedulerOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// RefreshScheduler renews the stored credential on a fixed interval so a
// long-lived process keeps its session alive without user interaction.
// Ticks are inert while the credential store is empty; renewal outcomes are
// logged and never stop the loop.
type RefreshScheduler struct {
	manager  *Manager
	interval time.Duration
	logger   *slog.Logger

	ctx             context.Context
	cancel          context.CancelFunc
	running         atomic.Bool
	mu              sync.Mutex
	wg              sync.WaitGroup
	shutdownTimeout time.Duration
}

// NewRefreshScheduler creates a scheduler that drives manager.Renew.
func NewRefreshScheduler(manager *Manager, opts ...SchedulerOption) (*RefreshScheduler, error) {
	if manager == nil {
		return nil, ErrManagerNil
	}

	options := &schedulerOptions{
		refreshInterval: 45 * time.Minute,
		shutdownTimeout: 30 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(options)
	}

	return &RefreshScheduler{
		manager:         manager,
		interval:        options.refreshInterval,
		shutdownTimeout: options.shutdownTimeout,
		logger:          options.logger,
	}, nil
}

// NewRefreshSchedulerFromConfig creates a RefreshScheduler from configuration.
// Additional options override config values.
func NewRefreshSchedulerFromConfig(cfg Config, manager *Manager, opts ...SchedulerOption) (*RefreshScheduler, error) {
	allOpts := append([]SchedulerOption{
		WithRefreshInterval(cfg.RefreshInterval),
	}, opts...)

	return NewRefreshScheduler(manager, allOpts...)
}

// Start begins the periodic renewal loop. This is a blocking operation that
// runs until the context is cancelled. Use Run() for errgroup pattern or call
// this in a goroutine. The first renewal happens one interval after Start;
// the credential was validated moments earlier by Initialize, so an
// immediate renewal would be redundant.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return fmt.Errorf("refresh scheduler already started")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	ticker := time.NewTicker(s.interval)
	s.mu.Unlock()

	s.running.Store(true)

	defer ticker.Stop()

	s.logger.InfoContext(s.ctx, "refresh scheduler started",
		logger.Component("session.scheduler"),
		slog.Duration("refresh_interval", s.interval))

	for {
		select {
		case <-s.ctx.Done():
			s.logger.InfoContext(context.Background(), "refresh scheduler stopping",
				logger.Component("session.scheduler"))
			s.running.Store(false)
			return s.ctx.Err()
		case <-ticker.C:
			s.renewWithWait()
		}
	}
}

// Stop gracefully shuts down the scheduler, waiting up to the shutdown
// timeout for an in-flight renewal to finish. Returns an error if the
// timeout is exceeded.
func (s *RefreshScheduler) Stop() error {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return fmt.Errorf("refresh scheduler not started")
	}

	s.running.Store(false)

	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer ctxCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.InfoContext(context.Background(), "refresh scheduler stopped cleanly",
			logger.Component("session.scheduler"))
		return nil
	case <-ctx.Done():
		s.logger.WarnContext(context.Background(), "refresh scheduler shutdown timeout exceeded",
			logger.Component("session.scheduler"),
			slog.Duration("timeout", s.shutdownTimeout))
		return fmt.Errorf("shutdown timeout exceeded after %s", s.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the scheduler, monitors context
// cancellation, and performs graceful shutdown when the context is cancelled.
func (s *RefreshScheduler) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = s.Stop() // Ignore stop error in normal shutdown
			<-errCh      // Wait for Start() to exit
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// IsRunning reports whether the scheduler loop is active.
func (s *RefreshScheduler) IsRunning() bool {
	return s.running.Load()
}

// renewWithWait tracks the tick with the WaitGroup so Stop can wait for it.
func (s *RefreshScheduler) renewWithWait() {
	// Mutex protects against shutdown race: must verify the scheduler is
	// still running AND add to the waitgroup atomically, otherwise Stop()
	// might wait on an incomplete count.
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()

	// Use context.Background() so a renewal already in flight completes and
	// persists its credential even while s.ctx is being cancelled.
	s.renewOnce(context.Background())
}

// renewOnce performs a single scheduled renewal.
func (s *RefreshScheduler) renewOnce(ctx context.Context) {
	if _, ok := s.manager.creds.Read(ctx); !ok {
		s.logger.DebugContext(ctx, "no stored credential, skipping renewal",
			logger.Component("session.scheduler"))
		return
	}

	if _, err := s.manager.Renew(ctx); err != nil {
		// Superseded means a logout or fresh login won the race; the newer
		// session owns the credential now. NoCredential means a logout
		// landed between the peek above and the renewal.
		if errors.Is(err, ErrSessionSuperseded) || errors.Is(err, ErrNoCredential) {
			s.logger.DebugContext(ctx, "scheduled renewal skipped",
				logger.Component("session.scheduler"),
				logger.Error(err))
			return
		}
		s.logger.WarnContext(ctx, "scheduled credential renewal failed",
			logger.Component("session.scheduler"),
			logger.Error(err))
		return
	}

	s.logger.DebugContext(ctx, "credential renewed",
		logger.Component("session.scheduler"),
		logger.Event("scheduled_renewal"))
}
