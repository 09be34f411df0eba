package httpserver_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kguard/internal/httpserver"
	"github.com/skillcoder/kguard/internal/infra/appstate"
	"github.com/skillcoder/kguard/internal/infra/pinger"
)

func newTestAppState(t *testing.T) *appstate.AppState {
	t.Helper()

	logger := slog.Default()

	return appstate.New(logger, time.Now(), make(chan os.Signal, 1), pinger.New(logger, time.Second))
}

func TestServer_Name(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(slog.Default(), newTestAppState(t), nil, "")

	require.Equal(t, "http-server", srv.Name())
}

func TestServer_HealthEndpoints(t *testing.T) {
	t.Parallel()

	appState := newTestAppState(t)
	handler := httpserver.New(slog.Default(), appState, nil, "").Handler()

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	require.Equal(t, http.StatusServiceUnavailable, get("/-/healthz").Code)
	require.Equal(t, http.StatusServiceUnavailable, get("/-/readyz").Code)

	require.NoError(t, appState.SetStarting(t.Context()))
	require.NoError(t, appState.SetRunning(t.Context()))

	require.Equal(t, http.StatusOK, get("/-/healthz").Code)
	require.Equal(t, http.StatusOK, get("/-/readyz").Code)

	rec := get("/-/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, "running", status["state"])
	require.Equal(t, true, status["ready"])

	// API routes are not mounted without an API
	require.Equal(t, http.StatusNotFound, get("/api/k3s/health").Code)
}

func TestServer_Ping(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("before ready returns error", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, newTestAppState(t), nil, "")

		require.ErrorIs(t, srv.Ping(t.Context()), httpserver.ErrNotReady)
	})

	t.Run("after ready returns nil", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(logger, newTestAppState(t), nil, "0")

		ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
		defer cancel()

		require.NoError(t, srv.Start(ctx))

		select {
		case <-srv.Ready():
		case <-time.After(1 * time.Second):
			t.Fatal("server did not become ready")
		}

		require.NoError(t, srv.Ping(t.Context()))
		require.Equal(t, http.StatusServiceUnavailable, getStatus(t, srv.Addr(), "/-/healthz"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer shutdownCancel()

		require.NoError(t, srv.Shutdown(shutdownCtx))
		// second shutdown is a no-op
		require.NoError(t, srv.Shutdown(shutdownCtx))
	})
}

func TestMetricsServer_Lifecycle(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewMetricsServer(slog.Default(), "0")
	require.Equal(t, "metrics-server", srv.Name())
	require.ErrorIs(t, srv.Ping(t.Context()), httpserver.ErrMetricsNotReady)
	require.Empty(t, srv.Addr())

	require.NoError(t, srv.Start(t.Context()))

	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		t.Fatal("metrics server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))
	require.Equal(t, http.StatusOK, getStatus(t, srv.Addr(), "/metrics"))
	require.Equal(t, http.StatusMethodNotAllowed, getStatus(t, srv.Addr(), "/metrics", http.MethodPost))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestServer_StartOnBusyPort(t *testing.T) {
	t.Parallel()

	first := httpserver.NewMetricsServer(slog.Default(), "0")
	require.NoError(t, first.Start(t.Context()))

	t.Cleanup(func() {
		_ = first.Shutdown(context.Background())
	})

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	second := httpserver.New(slog.Default(), newTestAppState(t), nil, port)
	require.Error(t, second.Start(t.Context()))
	require.ErrorIs(t, second.Ping(t.Context()), httpserver.ErrNotReady)
}

// getStatus issues a request against a server bound on all interfaces and returns the status code.
func getStatus(t *testing.T, addr, path string, method ...string) int {
	t.Helper()

	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	m := http.MethodGet
	if len(method) > 0 {
		m = method[0]
	}

	req, err := http.NewRequestWithContext(t.Context(), m, "http://127.0.0.1:"+port+path, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	return resp.StatusCode
}
