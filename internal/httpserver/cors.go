package httpserver

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300 // seconds browsers may cache a preflight

// corsHandler lets a dashboard served from another origin call the API with a
// bearer token. Origins are matched exactly; "*" allows any origin.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
