package v1handler

import (
	"labelchecker/internal/admin"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
	"net/http"
	"strings"
)

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.deps.Admin.Stats(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminListAccounts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	limit, err := pageLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	accounts, next, err := h.deps.Admin.Accounts(r.Context(), user, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newPage(accounts, next))
}

func (h *Handler) AdminGetAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.AccountID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	details, err := h.deps.Admin.Account(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) AdminUpdateAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.AccountID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req admin.AccountUpdate
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	acc, err := h.deps.Admin.UpdateAccount(r.Context(), user, id, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, acc)
}

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	limit, err := pageLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	users, next, err := h.deps.Admin.Users(r.Context(), user, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newPage(users, next))
}

type updateUserRequest struct {
	Role domain.Role `json:"role"`
}

func (h *Handler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.UserID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	updated, err := h.deps.Admin.SetUserRole(r.Context(), user, id, req.Role)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminListRules(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	marketplace := domain.Marketplace(strings.ToUpper(r.URL.Query().Get("marketplace")))

	rules, err := h.deps.Admin.Rules(r.Context(), user, marketplace)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newItems(rules))
}

type ruleRequest struct {
	Code        string             `json:"code"`
	Authority   domain.Authority   `json:"authority"`
	Marketplace domain.Marketplace `json:"marketplace"`
	Category    string             `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Severity    domain.Severity    `json:"severity"`
	Active      *bool              `json:"active"`
}

func (h *Handler) AdminCreateRule(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var req ruleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	rule := domain.RegulatoryRule{
		Code:        req.Code,
		Authority:   req.Authority,
		Marketplace: req.Marketplace,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Active:      req.Active == nil || *req.Active,
	}
	created, err := h.deps.Admin.CreateRule(r.Context(), user, rule)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type ruleUpdateRequest struct {
	Authority   *domain.Authority   `json:"authority"`
	Marketplace *domain.Marketplace `json:"marketplace"`
	Category    *string             `json:"category"`
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Severity    *domain.Severity    `json:"severity"`
	Active      *bool               `json:"active"`
}

func (h *Handler) AdminUpdateRule(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.RuleID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req ruleUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	updated, err := h.deps.Admin.UpdateRule(r.Context(), user, id, storage.RuleUpdates{
		Authority:   req.Authority,
		Marketplace: req.Marketplace,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Active:      req.Active,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) AdminDeleteRule(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.RuleID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Admin.DeleteRule(r.Context(), user, id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
