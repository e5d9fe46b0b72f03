package bot_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/bot/mocks"
)

func TestSweeperRunsImmediately(t *testing.T) {
	svc := &mocks.MockService{}
	var sweeps atomic.Int64
	svc.On("Sweep", mock.Anything).Run(func(mock.Arguments) {
		sweeps.Add(1)
	}).Return(nil)

	s := bot.NewSweeper(svc, discardLogger(), time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- s.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return sweeps.Load() == 1
	}, time.Second, 10*time.Millisecond)

	s.Stop()
	assert.NoError(t, <-done)
	assert.Equal(t, int64(1), sweeps.Load())
}

func TestSweeperTicks(t *testing.T) {
	svc := &mocks.MockService{}
	var sweeps atomic.Int64
	svc.On("Sweep", mock.Anything).Run(func(mock.Arguments) {
		sweeps.Add(1)
	}).Return(nil)

	s := bot.NewSweeper(svc, discardLogger(), 20*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- s.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return sweeps.Load() >= 3
	}, time.Second, 10*time.Millisecond)

	s.Stop()
	assert.NoError(t, <-done)
}

func TestSweeperContextCancel(t *testing.T) {
	svc := &mocks.MockService{}
	svc.On("Sweep", mock.Anything).Return(nil)

	s := bot.NewSweeper(svc, discardLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSweeperSurvivesSweepErrors(t *testing.T) {
	svc := &mocks.MockService{}
	var sweeps atomic.Int64
	svc.On("Sweep", mock.Anything).Run(func(mock.Arguments) {
		sweeps.Add(1)
	}).Return(errBackend)

	s := bot.NewSweeper(svc, discardLogger(), 20*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- s.Start(context.Background())
	}()

	require.Eventually(t, func() bool {
		return sweeps.Load() >= 2
	}, time.Second, 10*time.Millisecond)

	s.Stop()
	assert.NoError(t, <-done)
}
