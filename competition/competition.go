package competition

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyCompetitionID = errors.New("competition_id is required")
	ErrEmptyCategory      = errors.New("category is required")
	ErrEmptySchedule      = errors.New("evaluation_times is required")
	ErrEmptyDataset       = errors.New("dataset reference is incomplete")
)

// Definition describes a single scheduled competition as published in the
// remote configuration document. Definitions are immutable once parsed and
// replaced wholesale on every registry refresh.
type Definition struct {
	ID              string   `json:"competition_id"`
	Category        string   `json:"category"`
	EvaluationTimes []string `json:"evaluation_times"`
	DatasetRepo     string   `json:"dataset_hf_repo"`
	DatasetFilename string   `json:"dataset_hf_filename"`
	DatasetRepoType string   `json:"dataset_hf_repo_type"`
}

func (d Definition) Validate() error {
	if d.ID == "" {
		return ErrEmptyCompetitionID
	}
	if d.Category == "" {
		return ErrEmptyCategory
	}
	if len(d.EvaluationTimes) == 0 {
		return ErrEmptySchedule
	}
	if d.DatasetRepo == "" || d.DatasetFilename == "" || d.DatasetRepoType == "" {
		return ErrEmptyDataset
	}

	return nil
}

// Parse decodes a JSON array of competition definitions and validates each
// one. A single invalid entry fails the whole document so a refresh never
// installs a partially valid registry.
func Parse(data []byte) ([]Definition, error) {
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse competition configuration: %w", err)
	}

	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid competition %q: %w", defs[i].ID, err)
		}
	}

	return defs, nil
}

type Page struct {
	Offset       uint64       `json:"offset"`
	Limit        uint64       `json:"limit"`
	Total        uint64       `json:"total"`
	Competitions []Definition `json:"competitions"`
}
