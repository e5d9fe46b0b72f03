package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/safe-scan-ai/announcer/pkg/ledger"
)

func TestIsNew(t *testing.T) {
	ctx := context.Background()
	occurrence := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		desc     string
		setup    func(l ledger.Ledger)
		id       string
		check    time.Time
		expected bool
	}{
		{
			desc:     "unknown competition is new",
			setup:    func(ledger.Ledger) {},
			id:       "melanoma-1",
			check:    occurrence,
			expected: true,
		},
		{
			desc: "recorded occurrence is not new",
			setup: func(l ledger.Ledger) {
				l.Record(ctx, "melanoma-1", occurrence)
			},
			id:       "melanoma-1",
			check:    occurrence,
			expected: false,
		},
		{
			desc: "different occurrence is new",
			setup: func(l ledger.Ledger) {
				l.Record(ctx, "melanoma-1", occurrence)
			},
			id:       "melanoma-1",
			check:    occurrence.Add(6 * time.Hour),
			expected: true,
		},
		{
			desc: "earlier occurrence is also new",
			setup: func(l ledger.Ledger) {
				l.Record(ctx, "melanoma-1", occurrence)
			},
			id:       "melanoma-1",
			check:    occurrence.Add(-6 * time.Hour),
			expected: true,
		},
		{
			desc: "same instant in another location is not new",
			setup: func(l ledger.Ledger) {
				l.Record(ctx, "melanoma-1", occurrence)
			},
			id:       "melanoma-1",
			check:    occurrence.In(time.FixedZone("EAT", 3*60*60)),
			expected: false,
		},
		{
			desc: "other competition is unaffected",
			setup: func(l ledger.Ledger) {
				l.Record(ctx, "melanoma-1", occurrence)
			},
			id:       "melanoma-2",
			check:    occurrence,
			expected: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			l := ledger.NewInMemory()
			tc.setup(l)
			assert.Equal(t, tc.expected, l.IsNew(ctx, tc.id, tc.check))
		})
	}
}

func TestLast(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewInMemory()

	_, ok := l.Last(ctx, "melanoma-1")
	assert.False(t, ok)

	first := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	l.Record(ctx, "melanoma-1", first)
	last, ok := l.Last(ctx, "melanoma-1")
	assert.True(t, ok)
	assert.Equal(t, first, last)

	second := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	l.Record(ctx, "melanoma-1", second)
	last, ok = l.Last(ctx, "melanoma-1")
	assert.True(t, ok)
	assert.Equal(t, second, last)
}

func TestConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	l := ledger.NewInMemory()
	occurrence := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Record(ctx, "melanoma-1", occurrence)
			l.IsNew(ctx, "melanoma-1", occurrence)
		}()
	}
	wg.Wait()

	assert.False(t, l.IsNew(ctx, "melanoma-1", occurrence))
}
