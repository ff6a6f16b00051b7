package s3blob_test

import (
	"context"
	"io"
	"labelchecker/pkg/blob/s3blob"
	"labelchecker/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeS3 is a tiny in-memory path-style S3 endpoint.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	bucket := parts[0]
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch {
	case key == "" && r.Method == http.MethodHead:
		if !f.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		w.WriteHeader(http.StatusOK)
	case key == "" && r.Method == http.MethodPut:
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		b, _ := io.ReadAll(r.Body)
		f.objects[bucket+"/"+key] = string(b)
		f.types[bucket+"/"+key] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		body, ok := f.objects[bucket+"/"+key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)

			return
		}
		w.Header().Set("Content-Type", f.types[bucket+"/"+key])
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	case r.Method == http.MethodDelete:
		delete(f.objects, bucket+"/"+key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newStore(t *testing.T) (*s3blob.Store, *fakeS3) {
	t.Helper()

	fake := &fakeS3{buckets: map[string]bool{}, objects: map[string]string{}, types: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	st, err := s3blob.New(context.Background(), s3blob.Options{
		Endpoint:        srv.URL,
		Region:          "us-east-1",
		Bucket:          "labels",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		UsePathStyle:    true,
		HTTPClient:      srv.Client(),
	})
	require.NoError(t, err)

	return st, fake
}

func TestNew_requiresBucket(t *testing.T) {
	_, err := s3blob.New(context.Background(), s3blob.Options{})
	require.Error(t, err)
}

func TestStore_EnsureBucket(t *testing.T) {
	st, fake := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.EnsureBucket(ctx))
	require.True(t, fake.buckets["labels"])

	// second call sees the existing bucket
	require.NoError(t, st.EnsureBucket(ctx))
}

func TestStore_PutGetDelete(t *testing.T) {
	st, fake := newStore(t)
	ctx := context.Background()
	require.NoError(t, st.EnsureBucket(ctx))

	require.NoError(t, st.Put(ctx, "acc/scan.png", "image/png", []byte("png-bytes")))
	require.Equal(t, "png-bytes", fake.objects["labels/acc/scan.png"])

	obj, err := st.Get(ctx, "acc/scan.png")
	require.NoError(t, err)
	require.Equal(t, "acc/scan.png", obj.Key)
	require.Equal(t, "image/png", obj.ContentType)
	require.Equal(t, []byte("png-bytes"), obj.Body)

	require.NoError(t, st.Delete(ctx, "acc/scan.png"))
	_, err = st.Get(ctx, "acc/scan.png")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStore_PresignGet(t *testing.T) {
	st, _ := newStore(t)

	raw, err := st.PresignGet(context.Background(), "acc/scan.png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "/labels/acc/scan.png", u.Path)
	require.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
