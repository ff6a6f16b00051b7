package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/labelai/gemini"
	"labelchecker/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T, h http.HandlerFunc) *gemini.Analyzer {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	a, err := gemini.New(context.Background(), gemini.Options{
		APIKey:     "test-key",
		Model:      "gemini-test",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	return a
}

func input() labelai.Input {
	return labelai.Input{
		Marketplaces: []domain.Marketplace{domain.MarketplaceIT},
		Image:        []byte("img"),
		ContentType:  "image/png",
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := newAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)

		b, _ := io.ReadAll(r.Body)
		require.Contains(t, string(b), "application/json")

		answer := `{"score": 60, "summary": "CE mark unclear.", "marketplaces": [{"marketplace": "IT", "status": "WARNING", "findings": [{"authority": "CE", "severity": "MEDIUM", "status": "WARNING", "message": "CE mark too small"}]}]}`
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]string{{"text": answer}},
				},
			}},
		})
	})

	report, rl, err := a.Analyze(context.Background(), input())
	require.NoError(t, err)
	require.Equal(t, 60, report.Score)
	require.Equal(t, domain.ComplianceWarning, report.Status)
	require.Equal(t, "gemini-test", report.Model)
	require.Equal(t, labelai.RateLimitStatus{}, rl)
}

func TestAnalyzer_Analyze_quota(t *testing.T) {
	a := newAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)
	})

	_, rl, err := a.Analyze(context.Background(), input())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.True(t, rl.ResetAt.After(time.Now()))
}

func TestAnalyzer_Analyze_badRequest(t *testing.T) {
	a := newAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"bad image","status":"INVALID_ARGUMENT"}}`)
	})

	_, _, err := a.Analyze(context.Background(), input())
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
