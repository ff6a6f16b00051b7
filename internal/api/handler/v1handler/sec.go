package v1handler

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/serrors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type userCtxKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the user stored by the Authenticate middleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(domain.User)

	return user, ok
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// When allowQuery is set the access_token query parameter is accepted too,
// since browsers cannot set headers on websocket handshakes.
func bearerToken(r *http.Request, allowQuery bool) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}
	if allowQuery {
		return r.URL.Query().Get("access_token")
	}

	return ""
}

func (h *Handler) authenticate(r *http.Request, allowQuery bool) (*domain.User, error) {
	token := bearerToken(r, allowQuery)
	if token == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	user, err := h.deps.Auth.Authenticate(r.Context(), token)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return user, nil
}

// Authenticate rejects requests without a valid bearer token and stores the
// user in the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.authenticate(r, false)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		ctx := WithUser(r.Context(), *user)
		ctx = logger.WithFields(ctx, zap.Stringer("userId", user.ID), zap.Stringer("accountId", user.AccountID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the authenticated user or writes a 401.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, serrors.KindOnly(serrors.ErrUnauthorized))
	}

	return user, ok
}
