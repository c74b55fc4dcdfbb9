package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Mbii55/servio-admin-sub000/core/apiclient"
	"github.com/Mbii55/servio-admin-sub000/core/config"
	"github.com/Mbii55/servio-admin-sub000/core/credstore"
	"github.com/Mbii55/servio-admin-sub000/core/logger"
	"github.com/Mbii55/servio-admin-sub000/core/routeguard"
	"github.com/Mbii55/servio-admin-sub000/core/session"
	redisconn "github.com/Mbii55/servio-admin-sub000/integration/database/redis"
	"github.com/Mbii55/servio-admin-sub000/integration/marketplace"
	"github.com/Mbii55/servio-admin-sub000/pkg/async"
)

// App is the console's composition root. It owns one instance of every
// component in the credential pipeline and wires them in dependency order:
// store and cookie mirror feed the repository, the repository feeds the API
// client, the session manager sits on top and is handed back to the client
// as its credential renewer.
//
// Construction starts the background session initialization; commands wait
// for it through the route guard instead of blocking on creation.
type App struct {
	config Config
	logger *slog.Logger

	store   credstore.Store
	mirror  *credstore.JarMirror
	repo    *credstore.Repository
	api     *apiclient.Client
	manager *session.Manager
	guard   *routeguard.Guard
	market  *marketplace.Client

	redis *redis.Client
	init  *async.ExecFuture
}

// Option is a functional option for configuring the app.
type Option func(*App) error

// WithLogger replaces the logger built from APP_ENV and LOG_LEVEL.
func WithLogger(log *slog.Logger) Option {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

// WithStore injects the primary credential store, bypassing the configured
// backend. Intended for tests and for embedding the console in a host that
// manages its own persistence.
func WithStore(store credstore.Store) Option {
	return func(app *App) error {
		if store == nil {
			return errors.New("credential store cannot be nil")
		}
		app.store = store
		return nil
	}
}

// New builds the console from environment configuration and begins session
// initialization in the background. The returned app is usable immediately;
// Guard().Wait blocks until the stored credential has been validated or
// rejected.
func New(ctx context.Context, opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = NewLogger(cfg)
	}

	if app.store == nil {
		store, redisClient, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.store = store
		app.redis = redisClient
	}

	mirror, err := credstore.NewJarMirror(cfg.API.BaseURL, cfg.Credentials.CookieName, cfg.Credentials.CookieTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie mirror: %w", err)
	}
	app.mirror = mirror
	app.repo = credstore.NewRepository(ctx, app.store, mirror,
		credstore.WithRepositoryLogger(app.logger))

	api, err := apiclient.NewFromConfig(cfg.API, app.repo,
		apiclient.WithCookieJar(mirror.Jar()),
		apiclient.WithLogger(app.logger),
		apiclient.WithTransportOptions(apiclient.WithTransportLogger(app.logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	app.api = api

	app.manager = session.NewManager(app.repo, api, session.WithLogger(app.logger))
	api.SetRenewer(app.manager)

	guard, err := routeguard.NewFromConfig(cfg.Guard, app.manager)
	if err != nil {
		return nil, err
	}
	app.guard = guard

	market, err := marketplace.New(api)
	if err != nil {
		return nil, err
	}
	app.market = market

	app.init = async.Exec(ctx, app.manager, func(ctx context.Context, m *session.Manager) error {
		return m.Initialize(ctx)
	})

	return app, nil
}

// openStore selects the primary credential store from configuration. The
// redis backend returns its client so the app can close it and expose it for
// health checks.
func openStore(ctx context.Context, cfg Config) (credstore.Store, *redis.Client, error) {
	switch strings.ToLower(cfg.Credentials.Backend) {
	case credstore.BackendMemory:
		return credstore.NewMemoryStore(), nil, nil
	case credstore.BackendRedis:
		client, err := redisconn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect credential store: %w", err)
		}
		return credstore.NewRedisStore(client, cfg.Credentials.RedisKey, cfg.Credentials.RedisTTL), client, nil
	case credstore.BackendFile, "":
		store, err := credstore.NewFileStore(cfg.Credentials.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown credential store backend %q", cfg.Credentials.Backend)
	}
}

// NewLogger builds the logger from the environment preset. Unknown
// environments get the production preset; LOG_LEVEL overrides the preset's
// level and extra options override both. Request IDs attached by the API
// client surface on every record logged within a request context.
func NewLogger(cfg Config, extra ...logger.Option) *slog.Logger {
	opts := []logger.Option{
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if id, ok := apiclient.RequestIDFromContext(ctx); ok {
				return slog.String("request_id", id), true
			}
			return slog.Attr{}, false
		}),
	}

	switch strings.ToLower(cfg.Env) {
	case "development", "dev", "local":
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	default:
		opts = append(opts, logger.WithProduction(cfg.AppName))
	}

	if level, ok := parseLevel(cfg.LogLevel); ok {
		opts = append(opts, logger.WithLevel(level))
	}

	opts = append(opts, extra...)
	return logger.New(opts...)
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// Config returns the loaded configuration.
func (a *App) Config() Config {
	return a.config
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Repository returns the dual-location credential repository.
func (a *App) Repository() *credstore.Repository {
	return a.repo
}

// Manager returns the session state machine.
func (a *App) Manager() *session.Manager {
	return a.manager
}

// Guard returns the route guard observing the session.
func (a *App) Guard() *routeguard.Guard {
	return a.guard
}

// Marketplace returns the typed resource clients.
func (a *App) Marketplace() *marketplace.Client {
	return a.market
}

// Redis returns the redis client when the credential store runs on the redis
// backend, nil otherwise.
func (a *App) Redis() *redis.Client {
	return a.redis
}

// Init returns the future of the background session initialization. Await
// yields the initialization error, if any; the session state itself is
// already resolved by the time Await returns.
func (a *App) Init() *async.ExecFuture {
	return a.init
}

// NewScheduler creates a refresh scheduler over the app's session manager,
// configured from the environment. The caller owns its lifecycle.
func (a *App) NewScheduler(opts ...session.SchedulerOption) (*session.RefreshScheduler, error) {
	allOpts := append([]session.SchedulerOption{
		session.WithSchedulerLogger(a.logger),
	}, opts...)

	return session.NewRefreshSchedulerFromConfig(a.config.Session, a.manager, allOpts...)
}

// Close releases backend connections. Safe to call once construction
// succeeded, regardless of backend.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
