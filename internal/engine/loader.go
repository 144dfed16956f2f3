package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tartampluch/go-donor/internal/config"
)

// SourceConfig contains all parameters required to load the donor sheet.
type SourceConfig struct {
	URL   string // gviz export URL (tqx=out:json)
	Token string // optional Bearer token for private sheets
}

// Loader produces the donor set. The UI depends on this interface only,
// so tests can inject a fake without any network access.
type Loader interface {
	Load(ctx context.Context, src SourceConfig) ([]Donor, error)
}

// SheetLoader loads donors from a Google Sheets gviz export.
type SheetLoader struct {
	Fetcher SheetFetcher
}

// NewSheetLoader wires a loader on top of the given fetcher.
func NewSheetLoader(f SheetFetcher) *SheetLoader {
	return &SheetLoader{Fetcher: f}
}

// Load executes the fetch, unwrap and decode pipeline.
func (l *SheetLoader) Load(ctx context.Context, src SourceConfig) ([]Donor, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompLoader)
	log.InfoContext(ctx, config.MsgLoadStarted)

	if src.URL == "" {
		return nil, errors.New(config.ErrSheetURLEmpty)
	}
	if l.Fetcher == nil {
		return nil, errors.New(config.ErrFetcherMissing)
	}

	reader, err := l.Fetcher.Fetch(ctx, src.URL, src.Token)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrReadBody, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := Unwrap(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrUnwrap, err)
	}

	rows, err := DecodeTable(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDecodeTable, err)
	}

	donors, err := DecodeDonors(rows)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgLoadFinished,
		slog.Int(config.LogKeyRows, len(rows)),
		slog.Int64(config.LogKeyDuration, time.Since(start).Milliseconds()),
	)
	return donors, nil
}
