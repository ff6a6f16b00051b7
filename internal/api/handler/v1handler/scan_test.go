package v1handler_test

import (
	"bytes"
	"context"
	"labelchecker/internal/api/handler/v1handler"
	"labelchecker/internal/scanner"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartUpload(t *testing.T, image []byte, fields map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if image != nil {
		fw, err := mw.CreateFormFile("image", "label.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func TestCreateScan(t *testing.T) {
	f := newFixture(t, v1handler.Options{MaxUploadBytes: 1 << 20})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	image := []byte("\x89PNG fake image bytes")
	scanID := domain.ScanID(uuid.New())
	f.scanner.EXPECT().
		Enqueue(gomock.Any(), user, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.User, req scanner.NewScan) (*domain.Scan, error) {
			require.Equal(t, image, req.Image)
			require.Equal(t, "Vitamin C Gummies", req.ProductName)
			require.Equal(t, []string{"US", "UK", "DE"}, req.Marketplaces)

			return &domain.Scan{
				ID:           scanID,
				AccountID:    user.AccountID,
				UserID:       user.ID,
				ProductName:  req.ProductName,
				Status:       domain.ScanStatusPending,
				Marketplaces: []domain.Marketplace{domain.MarketplaceUS, domain.MarketplaceUK, domain.MarketplaceDE},
			}, nil
		})

	body, contentType := multipartUpload(t, image, map[string][]string{
		"productName":  {"Vitamin C Gummies"},
		"marketplaces": {"US", "UK, DE"},
	})
	rec := f.request(http.MethodPost, "/scans", body, contentType)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	scan := decode[domain.Scan](t, rec)
	require.Equal(t, scanID, scan.ID)
	require.Equal(t, domain.ScanStatusPending, scan.Status)
}

func TestCreateScan_BadUploads(t *testing.T) {
	t.Run("missing image", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{MaxUploadBytes: 1 << 20})
		f.loginAs(testUser(domain.RoleUser))

		body, contentType := multipartUpload(t, nil, map[string][]string{"productName": {"x"}})
		rec := f.request(http.MethodPost, "/scans", body, contentType)
		res := requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
		require.Equal(t, "image is required", res.Message)
	})

	t.Run("not multipart", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{MaxUploadBytes: 1 << 20})
		f.loginAs(testUser(domain.RoleUser))

		rec := f.json(http.MethodPost, "/scans", `{"image":"abc"}`)
		requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("too large", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{MaxUploadBytes: 1024})
		f.loginAs(testUser(domain.RoleUser))

		body, contentType := multipartUpload(t, bytes.Repeat([]byte{0xff}, 2<<20), nil)
		rec := f.request(http.MethodPost, "/scans", body, contentType)
		requireError(t, rec, http.StatusRequestEntityTooLarge, serrors.ErrTooLarge)
	})

	t.Run("quota exhausted", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{MaxUploadBytes: 1 << 20})
		f.loginAs(testUser(domain.RoleUser))
		f.scanner.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrPaymentRequired, "scan quota exhausted"))

		body, contentType := multipartUpload(t, []byte("img"), nil)
		rec := f.request(http.MethodPost, "/scans", body, contentType)
		res := requireError(t, rec, http.StatusPaymentRequired, serrors.ErrPaymentRequired)
		require.Equal(t, "scan quota exhausted", res.Message)
	})
}

func TestListScans(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	scans := []domain.Scan{
		{ID: domain.ScanID(uuid.New()), Status: domain.ScanStatusCompleted},
		{ID: domain.ScanID(uuid.New()), Status: domain.ScanStatusCompleted},
	}
	f.scanner.EXPECT().
		AccountScans(gomock.Any(), user, domain.ScanStatusCompleted, "2026-02-03T04:05:06Z", uint(2)).
		Return(scans, "2026-01-01T00:00:00Z", nil)

	rec := f.json(http.MethodGet, "/scans?status=completed&cursor=2026-02-03T04:05:06Z&limit=2", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	page := decode[v1handler.Page[domain.Scan]](t, rec)
	require.Len(t, page.Items, 2)
	require.Equal(t, scans[0].ID, page.Items[0].ID)
	require.Equal(t, "2026-01-01T00:00:00Z", page.NextCursor)
}

func TestGetScan_NotFound(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	id := domain.ScanID(uuid.New())
	f.scanner.EXPECT().Result(gomock.Any(), user, id).Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	rec := f.json(http.MethodGet, "/scans/"+id.String(), "")
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}

func TestDeleteScan(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	id := domain.ScanID(uuid.New())
	f.scanner.EXPECT().Delete(gomock.Any(), user, id).Return(nil)

	rec := f.json(http.MethodDelete, "/scans/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestScanImage_Redirects(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	id := domain.ScanID(uuid.New())
	signed := "https://labels.s3.amazonaws.com/labels/a/b.png?X-Amz-Signature=abc"
	f.scanner.EXPECT().ImageURL(gomock.Any(), user, id).Return(signed, nil)

	rec := f.json(http.MethodGet, "/scans/"+id.String()+"/image", "")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, signed, rec.Header().Get("Location"))
}

func TestRetryScan(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	id := domain.ScanID(uuid.New())
	f.scanner.EXPECT().Retry(gomock.Any(), user, id).Return(&domain.Scan{ID: id, Status: domain.ScanStatusPending}, nil)

	rec := f.json(http.MethodPost, "/scans/"+id.String()+"/retry", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, domain.ScanStatusPending, decode[domain.Scan](t, rec).Status)
}

func TestRetryScan_Conflict(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	id := domain.ScanID(uuid.New())
	f.scanner.EXPECT().
		Retry(gomock.Any(), user, id).
		Return(nil, serrors.With(serrors.ErrConflict, "only failed scans can be retried"))

	rec := f.json(http.MethodPost, "/scans/"+id.String()+"/retry", "")
	res := requireError(t, rec, http.StatusConflict, serrors.ErrConflict)
	require.Equal(t, "only failed scans can be retried", res.Message)
}
