package ledger

import (
	"context"
	"sync"
	"time"
)

// Ledger records the last announced occurrence per competition. It is the
// sole deduplication mechanism for announcements: an occurrence equal to the
// stored one is skipped, anything else counts as new. Entries live only for
// the lifetime of the process.
type Ledger interface {
	// IsNew reports whether the occurrence differs from the last announced
	// one for the competition, or no announcement was recorded yet.
	IsNew(ctx context.Context, competitionID string, occurrence time.Time) bool

	// Record unconditionally overwrites the last announced occurrence.
	Record(ctx context.Context, competitionID string, occurrence time.Time)

	// Last returns the last announced occurrence, if any.
	Last(ctx context.Context, competitionID string) (time.Time, bool)
}

type inMemoryLedger struct {
	sync.Mutex

	announced map[string]time.Time
}

func NewInMemory() Ledger {
	return &inMemoryLedger{
		announced: make(map[string]time.Time),
	}
}

func (l *inMemoryLedger) IsNew(_ context.Context, competitionID string, occurrence time.Time) bool {
	l.Lock()
	defer l.Unlock()

	last, ok := l.announced[competitionID]

	return !ok || !last.Equal(occurrence)
}

func (l *inMemoryLedger) Record(_ context.Context, competitionID string, occurrence time.Time) {
	l.Lock()
	defer l.Unlock()

	l.announced[competitionID] = occurrence
}

func (l *inMemoryLedger) Last(_ context.Context, competitionID string) (time.Time, bool) {
	l.Lock()
	defer l.Unlock()

	last, ok := l.announced[competitionID]

	return last, ok
}
