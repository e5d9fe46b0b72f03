package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSchedule = errors.New("invalid evaluation schedule")

const slotLayout = "15:04"

// Resolve computes the occurrence a competition schedule is currently on:
// the latest time-of-day slot that has already elapsed today (UTC), or the
// latest slot of yesterday when none has elapsed yet. The computation is
// pure; tracking which occurrence was already announced is the ledger's job.
func Resolve(slots []string, now time.Time) (time.Time, error) {
	if len(slots) == 0 {
		return time.Time{}, ErrInvalidSchedule
	}

	now = now.UTC()

	var latest, latestYesterday time.Time
	for _, slot := range slots {
		tod, err := time.Parse(slotLayout, slot)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: cannot parse slot %q", ErrInvalidSchedule, slot)
		}

		today := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
		if !today.After(now) && today.After(latest) {
			latest = today
		}

		// AddDate handles month and year boundaries, unlike decrementing
		// the day-of-month field.
		yesterday := today.AddDate(0, 0, -1)
		if yesterday.After(latestYesterday) {
			latestYesterday = yesterday
		}
	}

	if !latest.IsZero() {
		return latest, nil
	}

	return latestYesterday, nil
}

// Validate checks that every slot parses as an HH:MM time of day.
func Validate(slots []string) error {
	_, err := Resolve(slots, time.Now())

	return err
}
