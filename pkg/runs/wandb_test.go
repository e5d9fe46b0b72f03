package runs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safe-scan-ai/announcer/pkg/runs"
)

func TestNewService(t *testing.T) {
	_, err := runs.NewService(runs.Config{})
	assert.Error(t, err)

	svc, err := runs.NewService(runs.Config{Entity: "safe-scan-ai"})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestQueryRuns(t *testing.T) {
	window := runs.Window{
		CreatedAfter:  time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
		CreatedBefore: time.Date(2025, 6, 10, 14, 50, 0, 0, time.UTC).Add(time.Hour),
	}

	var gotQuery map[string]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"entity":         r.URL.Query().Get("entity"),
			"project":        r.URL.Query().Get("project"),
			"created_after":  r.URL.Query().Get("created_after"),
			"created_before": r.URL.Query().Get("created_before"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"runs":[
			{"id":"run-1","summary":{"miner_hotkey":"H1","winning_hotkey":"H1","score":0.87,"tested_entries":500}},
			{"id":"run-2","summary":{"miner_hotkey":"H2","winning_hotkey":"H1","score":0.51,"tested_entries":500}}
		]}`))
	}))
	defer srv.Close()

	svc, err := runs.NewService(runs.Config{
		BaseURL: srv.URL,
		Entity:  "safe-scan-ai",
		APIKey:  "secret",
		Timeout: time.Second,
	})
	require.NoError(t, err)

	records, err := svc.QueryRuns(context.Background(), "melanoma-1", window)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "safe-scan-ai", gotQuery["entity"])
	assert.Equal(t, "melanoma-1", gotQuery["project"])
	assert.Equal(t, "2025-06-10T15:00:00Z", gotQuery["created_after"])
	assert.Equal(t, "2025-06-10T15:50:00Z", gotQuery["created_before"])

	assert.Equal(t, "run-1", records[0].ID)
	assert.Equal(t, "H1", records[0].Summary["winning_hotkey"])
	assert.Equal(t, float64(500), records[0].Summary["tested_entries"])
}

func TestQueryRunsEmptyWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty window")
	}))
	defer srv.Close()

	svc, err := runs.NewService(runs.Config{BaseURL: srv.URL, Entity: "safe-scan-ai"})
	require.NoError(t, err)

	window := runs.Window{
		CreatedAfter:  time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
		CreatedBefore: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
	}
	records, err := svc.QueryRuns(context.Background(), "melanoma-1", window)
	assert.NoError(t, err)
	assert.Nil(t, records)
}

func TestQueryRunsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc, err := runs.NewService(runs.Config{BaseURL: srv.URL, Entity: "safe-scan-ai"})
	require.NoError(t, err)

	window := runs.Window{
		CreatedAfter:  time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
		CreatedBefore: time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC),
	}
	_, err = svc.QueryRuns(context.Background(), "melanoma-1", window)
	assert.Error(t, err)
}
