package results

import (
	"fmt"
)

const occurrenceLayout = "2006.01.02 15:04"

// Compose renders the announcement message body for a chat channel. Field
// order is part of the contract: competition id, date, dataset size, tested
// models, winning hotkey, score.
func Compose(outcome Outcome) string {
	return fmt.Sprintf(
		"# Competition results\n\n"+
			"**%s**  - `%s UTC`\n"+
			"Dataset size: %d\n\n"+
			"Tested models - %d\n\n"+
			"Winning hotkey - %s\n\n"+
			"Score: **%.2f**",
		outcome.CompetitionID,
		outcome.Occurrence.UTC().Format(occurrenceLayout),
		outcome.DatasetSize,
		outcome.TestedModels,
		outcome.WinningHotkey,
		outcome.Score,
	)
}
