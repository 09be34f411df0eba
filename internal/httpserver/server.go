package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kguard/internal/infra/shutdown"
)

// Server serves the probe endpoints and the dashboard API.
type Server struct {
	*endpoint

	appState appstater
	api      *API
}

// New creates a new HTTP server instance. A nil api serves only the health endpoints.
func New(logger *slog.Logger, appState appstater, api *API, port string) *Server {
	if port == "" {
		port = defaultPort
	}

	s := &Server{
		endpoint: newEndpoint(logger, "http-server", port, ErrNotReady),
		appState: appState,
		api:      api,
	}
	s.handler = s.Handler

	return s
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Handler builds the router with health and API endpoints.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", s.handleHealthz)
	router.Get("/-/readyz", s.handleReadyz)
	router.Get("/-/status", s.handleStatus)

	if s.api != nil {
		s.api.Routes(router)
	}

	return router
}
