// Package v1handler implements the /v1 REST and websocket endpoints.
package v1handler

import (
	"context"
	"encoding/json"
	"io"
	"labelchecker/internal/account"
	"labelchecker/internal/admin"
	"labelchecker/internal/auth"
	"labelchecker/internal/billing"
	"labelchecker/internal/config"
	"labelchecker/internal/scanner"
	"labelchecker/pkg/controller"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/progress"
	"labelchecker/pkg/serrors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	maxJSONBody = 1 << 20
)

// Deps are the services behind the endpoints.
type Deps struct {
	Auth     auth.Authenticator
	Accounts account.Service
	Scanner  scanner.Scanner
	Billing  billing.Service
	Admin    admin.Service
	Events   progress.Subscriber
}

// Options tune request handling.
type Options struct {
	// MaxUploadBytes bounds the multipart body of scan uploads.
	MaxUploadBytes int64
	// AllowedOrigins restricts websocket upgrades. Empty allows any origin.
	AllowedOrigins []string
	// AuthRPS and AuthBurst throttle the public auth endpoints per client IP. Zero disables it.
	AuthRPS   float64
	AuthBurst int
	// PingInterval is how often the event stream pings idle clients.
	PingInterval time.Duration
}

// NewOptions maps the application config to handler options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxUploadBytes: cfg.Scanner.MaxImageBytes,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AuthRPS:        cfg.RateLimit.AuthRPS,
		AuthBurst:      cfg.RateLimit.AuthBurst,
	}
}

type Handler struct {
	deps        Deps
	options     Options
	upgrader    websocket.Upgrader
	authLimiter *controller.RateLimiter
}

func New(deps Deps, options Options) *Handler {
	if options.PingInterval <= 0 {
		options.PingInterval = 30 * time.Second
	}

	h := &Handler{
		deps:    deps,
		options: options,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(options.AllowedOrigins) == 0 || origin == "" {
					return true
				}

				return slices.Contains(options.AllowedOrigins, origin)
			},
		},
	}
	if options.AuthRPS > 0 {
		h.authLimiter = controller.NewRateLimiter(options.AuthRPS, options.AuthBurst)
	}

	return h
}

// Routes returns the router of every /v1 endpoint except the event stream.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	// public
	r.Group(func(r chi.Router) {
		if h.authLimiter != nil {
			r.Use(h.authLimiter.Handler)
		}
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
	})
	r.Get("/invites/{token}", h.InvitePreview)
	r.Get("/billing/plans", h.Plans)
	r.Post("/webhooks/stripe", h.StripeWebhook)

	// authenticated
	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Get("/auth/me", h.Me)

		r.Get("/account", h.GetAccount)
		r.Patch("/account", h.RenameAccount)
		r.Get("/account/members", h.ListMembers)
		r.Delete("/account/members/{id}", h.RemoveMember)
		r.Get("/account/invites", h.ListInvites)
		r.Post("/account/invites", h.CreateInvite)
		r.Delete("/account/invites/{id}", h.RevokeInvite)
		r.Post("/invites/{token}/accept", h.AcceptInvite)

		r.Post("/scans", h.CreateScan)
		r.Get("/scans", h.ListScans)
		r.Get("/scans/{id}", h.GetScan)
		r.Delete("/scans/{id}", h.DeleteScan)
		r.Get("/scans/{id}/image", h.ScanImage)
		r.Post("/scans/{id}/retry", h.RetryScan)

		r.Post("/billing/checkout", h.Checkout)
		r.Post("/billing/portal", h.Portal)
		r.Get("/billing/payments", h.ListPayments)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", h.AdminStats)
			r.Get("/accounts", h.AdminListAccounts)
			r.Get("/accounts/{id}", h.AdminGetAccount)
			r.Patch("/accounts/{id}", h.AdminUpdateAccount)
			r.Get("/users", h.AdminListUsers)
			r.Patch("/users/{id}", h.AdminUpdateUser)
			r.Get("/rules", h.AdminListRules)
			r.Post("/rules", h.AdminCreateRule)
			r.Patch("/rules/{id}", h.AdminUpdateRule)
			r.Delete("/rules/{id}", h.AdminDeleteRule)
		})
	})

	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError maps err to a status code and response body. Internal errors never
// leak their message.
func (h *Handler) NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)
	status := kind.Status()

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return status, ErrorResponse{Code: kind.Error(), Message: serrors.PublicMessage(err)}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := h.NewError(r.Context(), err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func pathID[T ~[16]byte](r *http.Request, name string) (T, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return T{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return T(id), nil
}

// pageLimit reads the limit query parameter, defaulting to DefaultLimit and
// clamping to MaxLimit.
func pageLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	}

	return uint(min(n, MaxLimit)), nil //nolint: gosec
}

// Page is a cursor paginated list.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func newPage[T any](items []T, next string) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items, NextCursor: next}
}

// Items wraps a plain list.
type Items[T any] struct {
	Items []T `json:"items"`
}

func newItems[T any](items []T) Items[T] {
	if items == nil {
		items = []T{}
	}

	return Items[T]{Items: items}
}
