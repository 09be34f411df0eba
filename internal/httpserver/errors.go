package httpserver

import (
	"errors"
	"net/http"

	"github.com/skillcoder/kguard/internal/logic/cluster"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrBadRequest   = errors.New("bad request")
	ErrNotReady     = errors.New("http server is not ready")

	ErrMetricsNotReady = errors.New("metrics server is not ready")
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cluster.ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, cluster.ErrNoOwner):
		return http.StatusConflict
	case errors.Is(err, cluster.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cluster.ErrAdapterUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
