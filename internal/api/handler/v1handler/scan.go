package v1handler

import (
	"errors"
	"fmt"
	"io"
	"labelchecker/internal/scanner"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"net/http"
	"strings"
)

const (
	// multipartOverhead is the room left for form fields next to the image.
	multipartOverhead = 1 << 20
	multipartMemory   = 32 << 20
)

// scanMarketplaces accepts both repeated fields and comma separated values.
func scanMarketplaces(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (scanner.NewScan, error) {
	var req scanner.NewScan

	if h.options.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, serrors.Wrap(serrors.ErrTooLarge, err, "image exceeds %d bytes", h.options.MaxUploadBytes)
		}

		return req, serrors.Wrap(serrors.ErrBadRequest, err, "expected a multipart form")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("image")
	if err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "image is required")
	}
	defer file.Close()

	req.Image, err = io.ReadAll(file)
	if err != nil {
		return req, fmt.Errorf("could not read image: %w", err)
	}
	req.ProductName = r.FormValue("productName")
	req.Marketplaces = scanMarketplaces(r.MultipartForm.Value["marketplaces"])

	return req, nil
}

// CreateScan stores the uploaded label and queues it for analysis.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	req, err := h.readUpload(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	scan, err := h.deps.Scanner.Enqueue(r.Context(), user, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, scan)
}

// ListScans returns a page of the account's scans, newest first.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	limit, err := pageLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	scans, next, err := h.deps.Scanner.AccountScans(r.Context(),
		user,
		domain.ScanStatus(strings.ToUpper(q.Get("status"))),
		q.Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newPage(scans, next))
}

func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.ScanID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	scan, err := h.deps.Scanner.Result(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, scan)
}

func (h *Handler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.ScanID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Scanner.Delete(r.Context(), user, id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ScanImage redirects to a short lived download URL of the label image.
func (h *Handler) ScanImage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.ScanID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Scanner.ImageURL(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	http.Redirect(w, r, u, http.StatusFound)
}

func (h *Handler) RetryScan(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID[domain.ScanID](r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	scan, err := h.deps.Scanner.Retry(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, scan)
}
