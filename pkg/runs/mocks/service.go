package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/safe-scan-ai/announcer/pkg/runs"
)

// MockService is a mock implementation of the runs Service interface for testing
type MockService struct {
	mock.Mock
}

// QueryRuns returns the run records reported for the project within the window
func (m *MockService) QueryRuns(ctx context.Context, project string, window runs.Window) ([]runs.Record, error) {
	args := m.Called(ctx, project, window)
	if records, ok := args.Get(0).([]runs.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}
