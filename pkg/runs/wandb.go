package runs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defQueryTimeout = 30 * time.Second

var errEmptyEntity = errors.New("empty tracking entity")

type Config struct {
	BaseURL string
	Entity  string
	APIKey  string
	Timeout time.Duration
}

type service struct {
	cfg    Config
	client *http.Client
}

// NewService returns a Service backed by the tracking backend's REST API.
// Every query carries the client timeout so a hung backend cannot stall the
// announcement sweep.
func NewService(cfg Config) (Service, error) {
	if cfg.Entity == "" {
		return nil, errEmptyEntity
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defQueryTimeout
	}

	return &service{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (s *service) QueryRuns(ctx context.Context, project string, window Window) ([]Record, error) {
	if window.Empty() {
		return nil, nil
	}

	query := url.Values{}
	query.Set("entity", s.cfg.Entity)
	query.Set("project", project)
	query.Set("created_after", window.CreatedAfter.UTC().Format(time.RFC3339))
	query.Set("created_before", window.CreatedBefore.UTC().Format(time.RFC3339))

	reqURL := s.cfg.BaseURL + "/api/v1/runs?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs for project %s: %w", project, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to query runs for project %s: unexpected status %d", project, resp.StatusCode)
	}

	var body struct {
		Runs []Record `json:"runs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode runs for project %s: %w", project, err)
	}

	return body.Runs, nil
}
