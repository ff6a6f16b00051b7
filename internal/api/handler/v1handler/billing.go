package v1handler

import (
	"errors"
	"io"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"net/http"
)

// maxWebhookBody matches the payload limit Stripe documents for events.
const maxWebhookBody = 64 << 10

func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newItems(h.deps.Billing.Plans()))
}

type checkoutRequest struct {
	Plan domain.Plan `json:"plan"`
}

type redirectResponse struct {
	URL string `json:"url"`
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Billing.Checkout(r.Context(), user, req.Plan)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, redirectResponse{URL: u})
}

func (h *Handler) Portal(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	u, err := h.deps.Billing.Portal(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, redirectResponse{URL: u})
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	payments, err := h.deps.Billing.Payments(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newItems(payments))
}

// StripeWebhook applies a signed Stripe event. Non 2xx answers make Stripe
// redeliver the event.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, serrors.Wrap(serrors.ErrTooLarge, err, "webhook payload too large"))

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read payload"))

		return
	}

	if err := h.deps.Billing.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
