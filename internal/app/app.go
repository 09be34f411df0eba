package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillcoder/kguard/internal/config"
	"github.com/skillcoder/kguard/internal/httpserver"
	"github.com/skillcoder/kguard/internal/infra/pinger"
	"github.com/skillcoder/kguard/internal/infra/shutdown"
)

const (
	clusterPingerName  = "cluster-api"
	clusterPingTimeout = 3 * time.Second
)

type App struct {
	logger        *slog.Logger
	appState      appstater
	engine        *Engine
	server        appServer
	metricsServer appServer
}

// New creates the API server application with all dependencies wired.
func New(logger *slog.Logger, cfg *config.Config, appState appstater) (*App, error) {
	if err := cfg.ValidateServe(); err != nil {
		return nil, err
	}

	engine, err := NewEngine(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	return newApp(logger, cfg, appState, engine), nil
}

func newApp(logger *slog.Logger, cfg *config.Config, appState appstater, engine *Engine) *App {
	api := httpserver.NewAPI(
		logger,
		engine.Discovery,
		engine.Remediation,
		engine.Scan,
		engine.AuditLister(),
		httpserver.NewAuthenticator(logger, cfg.JWTSecret),
		cfg.CORSOrigins,
	)

	return &App{
		logger:        logger,
		appState:      appState,
		engine:        engine,
		server:        httpserver.New(logger, appState, api, cfg.HTTPPort),
		metricsServer: httpserver.NewMetricsServer(logger, cfg.MetricsPort),
	}
}

// Run starts the servers and blocks until a termination signal or context cancellation,
// then shuts every component down in reverse start order.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go shutdown.New(a.logger, a.appState).HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	a.logger.InfoContext(ctx, "starting kguard")

	startErr := a.start(ctx)
	if startErr != nil {
		a.logger.ErrorContext(ctx, "start failed, shutting down", "reason", startErr)
		cancel()
	}

	if startErr == nil {
		select {
		case <-allChannelsClose(ctx, a.logger, a.server.Ready(), a.metricsServer.Ready(), a.appState.PingerReady()):
			if err := a.appState.SetRunning(ctx); err != nil {
				a.logger.WarnContext(ctx, "set running", "reason", err)
			}
		case <-ctx.Done():
		}

		<-ctx.Done()
	}

	a.logger.InfoContext(originCtx, "shutting down kguard")

	return errors.Join(startErr, a.appState.Shutdown(originCtx))
}

// start registers components in dependency order; shutdown runs in reverse.
func (a *App) start(ctx context.Context) error {
	if store := a.engine.AuditStore(); store != nil {
		if err := a.appState.RegisterShutdowner(store); err != nil {
			return fmt.Errorf("register audit store: %w", err)
		}
	}

	clusterPinger := pinger.NewFunc(
		clusterPingerName,
		a.engine.Discovery.Ping,
		pinger.WithTimeout(clusterPingTimeout),
		pinger.NotHealthCritical(),
	)

	for _, p := range []pinger.Pinger{clusterPinger, a.metricsServer, a.server} {
		if err := a.appState.RegisterPinger(p); err != nil {
			return fmt.Errorf("register pinger %s: %w", p.Name(), err)
		}
	}

	for _, srv := range []appServer{a.metricsServer, a.server} {
		if err := a.appState.RegisterShutdowner(srv); err != nil {
			return fmt.Errorf("register %s: %w", srv.Name(), err)
		}

		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", srv.Name(), err)
		}
	}

	// servers first so the first probe round sees them listening
	return a.appState.StartPinger(ctx)
}

// allChannelsClose returns a channel closed once every input channel is closed
// or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for components",
					"ready", i,
					"total", len(chans),
				)

				return
			}
		}
	}()

	return out
}
