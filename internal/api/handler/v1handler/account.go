package v1handler

import (
	"labelchecker/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	overview, err := h.deps.Accounts.Overview(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, overview)
}

type renameAccountRequest struct {
	Name string `json:"name"`
}

func (h *Handler) RenameAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var req renameAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	acc, err := h.deps.Accounts.Rename(r.Context(), user, req.Name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, acc)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	members, err := h.deps.Accounts.Members(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newItems(members))
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Accounts.RemoveMember(r.Context(), user, id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListInvites(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	invites, err := h.deps.Accounts.Invites(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newItems(invites))
}

type createInviteRequest struct {
	Email string `json:"email"`
}

func (h *Handler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var req createInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	invite, err := h.deps.Accounts.Invite(r.Context(), user, req.Email)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, invite)
}

func (h *Handler) RevokeInvite(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.InviteID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Accounts.RevokeInvite(r.Context(), user, id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// InvitePreview is public so the signup page can show who invited the visitor.
func (h *Handler) InvitePreview(w http.ResponseWriter, r *http.Request) {
	preview, err := h.deps.Accounts.InviteByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, preview)
}

func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	updated, err := h.deps.Accounts.AcceptInvite(r.Context(), user, chi.URLParam(r, "token"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}
