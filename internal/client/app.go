package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lumenplay/levelkeeper/internal/adapter"
	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/service"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/internal/workers"
	"github.com/lumenplay/levelkeeper/models"
)

type App struct {
	cfg     *config.ClientConfig
	adapter adapter.ServerAdapter
	engine  service.SyncEngine

	logger *logger.Logger
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	localStore := store.NewPersistentStore(cfg.Cache, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	queue := service.NewMutationQueue(localStore, serverAdapter, log)
	engine := service.NewSyncEngine(localStore, serverAdapter, queue, cfg.Sync, log)

	return &App{
		cfg:     cfg,
		adapter: serverAdapter,
		engine:  engine,
		logger:  log,
	}, nil
}

// Run authenticates, performs an initial forced sync, and keeps the engine's
// trigger loop running until the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.authenticate(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	if err := a.engine.Sync(ctx, true); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, continuing with cached state")
	}

	status, err := a.engine.Status(ctx)
	if err == nil {
		a.logger.Info().
			Time("last_sync", status.LastSyncTime).
			Int("cached_entities", status.CachedEntityCount).
			Int("queue_depth", status.QueueDepth).
			Msg("client ready")
	}

	tick := workers.NewTickWorker(ctx, a.cfg.Sync.Interval)

	// No lifecycle source exists in a headless process; the observer slot
	// stays empty and the engine never selects that trigger.
	var reachability service.ReachabilityObserver
	pool := []workers.Worker{tick}
	if addr, err := probeAddr(a.cfg.Adapter.HTTPAddress); err != nil {
		a.logger.Warn().Err(err).Msg("reachability probe disabled, cannot derive probe address")
	} else {
		probe := workers.NewReachabilityWorker(ctx, addr, a.cfg.Sync.Throttle, a.logger)
		reachability = probe
		pool = append(pool, probe)
	}

	trigger := workers.NewTriggerWorker(ctx, a.engine, tick.Ticks(), reachability, nil)
	pool = append(pool, trigger)
	workers.NewWorkers(pool...).Run()

	<-ctx.Done()
	a.logger.Info().Msg("client shutting down")

	return nil
}

// authenticate logs in with the configured credentials, registering the
// account first when the server does not know it yet.
func (a *App) authenticate(ctx context.Context) error {
	user := models.User{
		Login:    getenv("LEVELKEEPER_LOGIN", "demo"),
		Password: getenv("LEVELKEEPER_PASSWORD", "demo"),
	}

	_, err := a.adapter.Login(ctx, user)
	if err == nil {
		a.logger.Info().Str("login", user.Login).Msg("logged in")
		return nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	if _, err = a.adapter.Register(ctx, user); err != nil {
		return err
	}
	a.logger.Info().Str("login", user.Login).Msg("registered new account")

	return nil
}

// probeAddr derives the host:port the reachability probe dials from the
// adapter's base address, defaulting the port from the scheme.
func probeAddr(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("no host in address %q", raw)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
