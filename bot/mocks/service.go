package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/competition"
)

// MockService is a mock implementation of the bot Service interface for testing
type MockService struct {
	mock.Mock
}

// RefreshRegistry replaces the registry contents from the configuration source
func (m *MockService) RefreshRegistry(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Sweep runs one refresh-and-announce cycle
func (m *MockService) Sweep(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// AnnounceCompetition announces the current occurrence of one competition
func (m *MockService) AnnounceCompetition(ctx context.Context, def competition.Definition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

// ListCompetitions lists configured competitions
func (m *MockService) ListCompetitions(ctx context.Context, offset, limit uint64) (competition.Page, error) {
	args := m.Called(ctx, offset, limit)
	if page, ok := args.Get(0).(competition.Page); ok {
		return page, args.Error(1)
	}
	return competition.Page{}, args.Error(1)
}

// GetCompetition gets a competition by id
func (m *MockService) GetCompetition(ctx context.Context, competitionID string) (competition.Definition, error) {
	args := m.Called(ctx, competitionID)
	if def, ok := args.Get(0).(competition.Definition); ok {
		return def, args.Error(1)
	}
	return competition.Definition{}, args.Error(1)
}

// LastAnnouncement gets the last announced occurrence of a competition
func (m *MockService) LastAnnouncement(ctx context.Context, competitionID string) (bot.Announcement, error) {
	args := m.Called(ctx, competitionID)
	if a, ok := args.Get(0).(bot.Announcement); ok {
		return a, args.Error(1)
	}
	return bot.Announcement{}, args.Error(1)
}

// Shutdown runs a final sweep and releases external connections
func (m *MockService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
