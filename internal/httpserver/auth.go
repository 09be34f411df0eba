package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/skillcoder/kguard/internal/logic/remediation"
)

const bearerPrefix = "Bearer "

// Authenticator verifies HS256 bearer tokens. Token issuance lives elsewhere.
type Authenticator struct {
	logger *slog.Logger
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(logger *slog.Logger, secret string) *Authenticator {
	return &Authenticator{
		logger: logger,
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Verify checks the signature and the time claims of raw and returns its subject.
func (a *Authenticator) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}

		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims.Subject, nil
}

// Middleware rejects requests without a valid bearer token with 401 and
// attaches the token subject as the remediation principal.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			a.reject(w, r, ErrMissingToken)

			return
		}

		subject, err := a.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			a.reject(w, r, err)

			return
		}

		ctx := remediation.WithPrincipal(r.Context(), subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.WarnContext(r.Context(), "request rejected",
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
		"reason", err,
	)

	detail := ErrInvalidToken.Error()

	switch {
	case errors.Is(err, ErrMissingToken):
		detail = ErrMissingToken.Error()
	case errors.Is(err, ErrTokenExpired):
		detail = ErrTokenExpired.Error()
	}

	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSON(a.logger, w, r, http.StatusUnauthorized, errorResponse{Detail: detail})
}
