package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long browsers may cache a preflight answer, in seconds.
const corsMaxAge = 300

// CORS answers browsers calling from allowedOrigins. An empty list allows any
// origin without credentials; the API authenticates with bearer tokens so the
// wildcard never exposes cookies.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Cache-Control", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         corsMaxAge,
	}
	if len(allowedOrigins) > 0 {
		opts.AllowedOrigins = allowedOrigins
		opts.AllowCredentials = true
	}

	return cors.Handler(opts)
}
