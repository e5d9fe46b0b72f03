// Package configsource fetches the remote competition configuration
// document that feeds the registry.
package configsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/safe-scan-ai/announcer/competition"
)

const defFetchTimeout = 30 * time.Second

var (
	ErrFetchFailed = errors.New("failed to fetch competition configuration")

	errEmptyURL = errors.New("empty configuration URL")
)

type Fetcher interface {
	// Fetch retrieves and validates the full set of competition
	// definitions. Partial results are never returned.
	Fetch(ctx context.Context) ([]competition.Definition, error)
}

type fetcher struct {
	url    string
	client *http.Client
}

func NewFetcher(url string, timeout time.Duration) (Fetcher, error) {
	if url == "" {
		return nil, errEmptyURL
	}
	if timeout <= 0 {
		timeout = defFetchTimeout
	}

	return &fetcher{
		url: url,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (f *fetcher) Fetch(ctx context.Context) ([]competition.Definition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	defs, err := competition.Parse(data)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	return defs, nil
}
