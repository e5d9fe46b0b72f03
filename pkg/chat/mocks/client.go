package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of the chat Client interface for testing
type MockClient struct {
	mock.Mock
}

// WaitReady blocks until the chat connection is ready
func (m *MockClient) WaitReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// SendMessage posts text to the named channel in the given guild
func (m *MockClient) SendMessage(ctx context.Context, guildID, channelName, text string) error {
	args := m.Called(ctx, guildID, channelName, text)
	return args.Error(0)
}

// Close releases the chat connection
func (m *MockClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
