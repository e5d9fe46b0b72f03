// Package results turns a window of raw run records into a single
// authoritative competition outcome via majority vote, and renders the
// announcement message for it.
package results

import (
	"errors"
	"fmt"
	"time"

	"github.com/safe-scan-ai/announcer/pkg/runs"
)

// Summary field names reported by validators.
const (
	scoreKey         = "score"
	winningHotkeyKey = "winning_hotkey"
	minerHotkeyKey   = "miner_hotkey"
	testedEntriesKey = "tested_entries"
)

var (
	// ErrNoRecords means nothing was reported in the window. Informational:
	// the occurrence stays unannounced and is retried next sweep.
	ErrNoRecords = errors.New("no run records in window")

	// ErrNoVotes means records exist but none carries a winning_hotkey,
	// which indicates malformed or incomplete validator data.
	ErrNoVotes = errors.New("no validator votes found")

	// ErrWinnerRecordNotFound means the elected winner has no traceable
	// source record. Data-integrity violation.
	ErrWinnerRecordNotFound = errors.New("winner record not found")

	// ErrMissingField means the winner record lacks a required summary
	// field. Aggregation fails rather than defaulting the value.
	ErrMissingField = errors.New("missing summary field")
)

// Outcome is a fully populated aggregation result. It is constructed fresh
// per successful aggregation and never mutated.
type Outcome struct {
	CompetitionID string    `json:"competition_id"`
	Occurrence    time.Time `json:"competition_date"`
	DatasetSize   int       `json:"dataset_size"`
	TestedModels  int       `json:"tested_models_amount"`
	WinningHotkey string    `json:"winning_hotkey"`
	Score         float64   `json:"score"`
}

// Aggregate elects the winner of one competition occurrence from the run
// records reported by independent validators. Records carrying a score count
// as tested models; winning_hotkey values form the vote multiset. The mode
// wins, ties broken by first-encountered record order. The winner's own
// record (first whose miner_hotkey matches) supplies dataset size and score.
func Aggregate(competitionID string, occurrence time.Time, records []runs.Record) (Outcome, error) {
	if len(records) == 0 {
		return Outcome{}, ErrNoRecords
	}

	testedModels := 0
	votes := make([]string, 0, len(records))
	for _, record := range records {
		if _, ok := record.Summary[scoreKey]; ok {
			testedModels++
		}
		if vote, ok := record.Summary[winningHotkeyKey]; ok {
			if hotkey, ok := vote.(string); ok {
				votes = append(votes, hotkey)
			}
		}
	}

	if len(votes) == 0 {
		return Outcome{}, fmt.Errorf("%w for competition %s", ErrNoVotes, competitionID)
	}

	winner := mode(votes)

	winnerRecord, ok := findWinnerRecord(records, winner)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: hotkey %s for competition %s", ErrWinnerRecordNotFound, winner, competitionID)
	}

	datasetSize, err := intField(winnerRecord, testedEntriesKey)
	if err != nil {
		return Outcome{}, err
	}
	score, err := floatField(winnerRecord, scoreKey)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		CompetitionID: competitionID,
		Occurrence:    occurrence,
		DatasetSize:   datasetSize,
		TestedModels:  testedModels,
		WinningHotkey: winner,
		Score:         score,
	}, nil
}

// mode returns the most frequent vote. On a tie the value encountered first
// wins, so the result is stable for a given record order.
func mode(votes []string) string {
	counts := make(map[string]int, len(votes))
	winner := votes[0]
	for _, vote := range votes {
		counts[vote]++
		if counts[vote] > counts[winner] {
			winner = vote
		}
	}

	return winner
}

// findWinnerRecord returns the first record whose miner_hotkey matches the
// elected winner. First match is authoritative.
func findWinnerRecord(records []runs.Record, winner string) (runs.Record, bool) {
	for _, record := range records {
		hotkey, ok := record.Summary[minerHotkeyKey].(string)
		if ok && hotkey == winner {
			return record, true
		}
	}

	return runs.Record{}, false
}

func intField(record runs.Record, key string) (int, error) {
	value, ok := record.Summary[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		// JSON numbers decode as float64.
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s is not a number", ErrMissingField, key)
	}
}

func floatField(record runs.Record, key string) (float64, error) {
	value, ok := record.Summary[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s is not a number", ErrMissingField, key)
	}
}
