package engine_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
)

// TestHTTPFetcher_Fetch_Success verifies a complete successful download flow.
// It checks correct headers (User-Agent, Bearer token) and response body integrity.
func TestHTTPFetcher_Fetch_Success(t *testing.T) {
	expectedToken := "ya29.secret"
	expectedBody := gvizBody(`{"table":{"rows":[]}}`)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+expectedToken, r.Header.Get("Authorization"), "Authorization mismatch")
		assert.Equal(t, config.UserAgent, r.Header.Get("User-Agent"), "User-Agent mismatch")
		assert.Equal(t, "out:json", r.URL.Query().Get("tqx"), "Query string must be forwarded")

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(expectedBody))
	}))
	defer ts.Close()

	fetcher := engine.NewHTTPFetcher()
	rc, err := fetcher.Fetch(context.Background(), ts.URL+"/gviz/tq?tqx=out:json", expectedToken)

	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, expectedBody, string(body))
}

// TestHTTPFetcher_Fetch_NoToken ensures public sheets are fetched anonymously.
func TestHTTPFetcher_Fetch_NoToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "No credential should be sent without a token")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "")
	require.NoError(t, err)
	_ = rc.Close()
}

// TestHTTPFetcher_Fetch_Errors verifies proper error handling for non-200 statuses.
func TestHTTPFetcher_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    string
	}{
		{"NotFound", http.StatusNotFound, "404"},
		{"ServerError", http.StatusInternalServerError, "500"},
		{"Unauthorized", http.StatusUnauthorized, "401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			fetcher := engine.NewHTTPFetcher()
			rc, err := fetcher.Fetch(context.Background(), ts.URL, "")

			assert.Error(t, err)
			assert.Nil(t, rc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestHTTPFetcher_Fetch_Timeout ensures the client respects context deadlines.
func TestHTTPFetcher_Fetch_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	fetcher := engine.NewHTTPFetcher()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := fetcher.Fetch(ctx, ts.URL, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "Should return context deadline exceeded error")
}

// TestHTTPFetcher_Fetch_InvalidURL ensures malformed URLs are caught early.
func TestHTTPFetcher_Fetch_InvalidURL(t *testing.T) {
	fetcher := engine.NewHTTPFetcher()

	_, err := fetcher.Fetch(context.Background(), string([]byte{0x7f}), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrInvalidURL)
}

// TestHTTPFetcher_Fetch_ProtocolSecurity enforces HTTP/HTTPS only.
func TestHTTPFetcher_Fetch_ProtocolSecurity(t *testing.T) {
	fetcher := engine.NewHTTPFetcher()

	_, err := fetcher.Fetch(context.Background(), "ftp://example.com/sheet.json", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrProtocol)
}
