package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/safe-scan-ai/announcer/competition"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	mock.Mock
}

// Fetch retrieves and validates the full set of competition definitions
func (m *MockFetcher) Fetch(ctx context.Context) ([]competition.Definition, error) {
	args := m.Called(ctx)
	if defs, ok := args.Get(0).([]competition.Definition); ok {
		return defs, args.Error(1)
	}
	return nil, args.Error(1)
}
