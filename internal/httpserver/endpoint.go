package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
)

// endpoint owns the listen, serve and shutdown lifecycle of one port.
// Server and MetricsServer embed it and only differ in the handler they mount.
type endpoint struct {
	logger     *slog.Logger
	name       string
	port       string
	notReady   error
	handler    func() http.Handler
	server     *http.Server
	addr       string
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newEndpoint(logger *slog.Logger, name, port string, notReady error) *endpoint {
	return &endpoint{
		logger:   logger.With("component", name),
		name:     name,
		port:     port,
		notReady: notReady,
		ready:    make(chan struct{}),
	}
}

// Name returns the component name used for pinger and shutdown registration.
func (e *endpoint) Name() string {
	return e.name
}

// Ping returns nil once the listener is bound.
func (e *endpoint) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.ready:
		return nil
	default:
		return e.notReady
	}
}

// Ready returns a channel that is closed once the listener is bound.
func (e *endpoint) Ready() <-chan struct{} {
	return e.ready
}

// Addr is the bound listen address. Empty until Ready is closed.
func (e *endpoint) Addr() string {
	select {
	case <-e.ready:
		return e.addr
	default:
		return ""
	}
}

// Start binds the port synchronously so a busy port fails the caller, then serves in a goroutine.
func (e *endpoint) Start(ctx context.Context) error {
	if e.inShutdown.Load() {
		e.logger.InfoContext(ctx, "server is shutting down, skipping start")

		return nil
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	listener, err := lc.Listen(ctx, "tcp", ":"+e.port)
	if err != nil {
		return fmt.Errorf("listen %s: %w", e.name, err)
	}

	e.server = &http.Server{
		Handler:           e.handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}
	e.addr = listener.Addr().String()

	e.logger.InfoContext(ctx, "server listening", "addr", e.addr)
	close(e.ready)

	go func() {
		if err := e.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.ErrorContext(ctx, "server stopped serving", "reason", err)
		}
	}()

	return nil
}

// Shutdown drains in-flight requests. Repeated calls are no-ops.
func (e *endpoint) Shutdown(ctx context.Context) error {
	if !e.inShutdown.CompareAndSwap(false, true) {
		e.logger.WarnContext(ctx, "server is already shutting down, skipping shutdown")

		return nil
	}

	if e.server == nil {
		return nil
	}

	e.logger.InfoContext(ctx, "shutting down server")

	if err := e.server.Shutdown(ctx); err != nil {
		e.logger.ErrorContext(ctx, "server shutdown failed", "reason", err)

		return fmt.Errorf("%s shutdown: %w", e.name, err)
	}

	e.logger.InfoContext(ctx, "server closed")

	return nil
}
