// Package controller holds the HTTP middlewares shared by every route: access
// logging with request IDs (WithLogger), CORS, and per client IP rate limiting
// (RateLimiter). PprofMux exposes net/http/pprof for the profiling routes.
package controller
