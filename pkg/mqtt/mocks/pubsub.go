package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of the Publisher interface for testing
type MockPublisher struct {
	mock.Mock
}

// Publish publishes a message to the specified topic
func (m *MockPublisher) Publish(ctx context.Context, topic string, msg any) error {
	args := m.Called(ctx, topic, msg)
	return args.Error(0)
}

// Disconnect closes the MQTT connection
func (m *MockPublisher) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
