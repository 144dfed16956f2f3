package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tartampluch/go-donor/internal/config"
)

// SheetFetcher defines the contract for retrieving the raw spreadsheet export.
// This interface allows for mocking in tests and decoupling from the network layer.
type SheetFetcher interface {
	Fetch(ctx context.Context, url, token string) (io.ReadCloser, error)
}

// HTTPFetcher implements SheetFetcher using the standard net/http library.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a new instance of HTTPFetcher with configured timeouts.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch retrieves the gviz export from a remote URL.
// A non-empty token is sent as a Bearer credential for private sheets.
// It enforces a maximum response size limit.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, token string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}

	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query parameters may carry sheet keys, keep them out of the logs.
	safeURL := u.Scheme + "://" + u.Host + u.Path

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)

	log.Debug(config.MsgFetchStart)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	if token != "" {
		req.Header.Set(config.HeaderAuthorization, config.BearerPrefix+token)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during fetch: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus,
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("server returned unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	log.Info(config.MsgFetchOK,
		slog.Int64(config.LogKeySize, resp.ContentLength),
	)

	return &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, config.MaxHTTPResponseSize),
		Closer: resp.Body,
	}, nil
}

// limitedReadCloser wraps an io.Reader (Limited) and the original io.Closer.
// This ensures we can close the network connection properly while limiting the read size.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	return l.Reader.Read(p)
}

func (l *limitedReadCloser) Close() error {
	return l.Closer.Close()
}
