package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/kguard/internal/infra/shutdown"
)

const defaultMetricsPort = "9090"

// MetricsServer exposes the default Prometheus registry on its own port,
// away from the authenticated API.
type MetricsServer struct {
	*endpoint
}

// NewMetricsServer creates a metrics server for GET /metrics.
func NewMetricsServer(logger *slog.Logger, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	s := &MetricsServer{
		endpoint: newEndpoint(logger, "metrics-server", port, ErrMetricsNotReady),
	}
	s.handler = s.Handler

	return s
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

// Handler builds the metrics router.
func (s *MetricsServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}
