package competition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safe-scan-ai/announcer/competition"
)

func validDefinition() competition.Definition {
	return competition.Definition{
		ID:              "melanoma-1",
		Category:        "skin-cancer",
		EvaluationTimes: []string{"09:00", "15:00"},
		DatasetRepo:     "safe-scan-ai/melanoma",
		DatasetFilename: "dataset.zip",
		DatasetRepoType: "dataset",
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		desc   string
		mutate func(d *competition.Definition)
		err    error
	}{
		{
			desc:   "valid definition",
			mutate: func(*competition.Definition) {},
		},
		{
			desc:   "empty id",
			mutate: func(d *competition.Definition) { d.ID = "" },
			err:    competition.ErrEmptyCompetitionID,
		},
		{
			desc:   "empty category",
			mutate: func(d *competition.Definition) { d.Category = "" },
			err:    competition.ErrEmptyCategory,
		},
		{
			desc:   "empty schedule",
			mutate: func(d *competition.Definition) { d.EvaluationTimes = nil },
			err:    competition.ErrEmptySchedule,
		},
		{
			desc:   "missing dataset repo",
			mutate: func(d *competition.Definition) { d.DatasetRepo = "" },
			err:    competition.ErrEmptyDataset,
		},
		{
			desc:   "missing dataset filename",
			mutate: func(d *competition.Definition) { d.DatasetFilename = "" },
			err:    competition.ErrEmptyDataset,
		},
		{
			desc:   "missing dataset repo type",
			mutate: func(d *competition.Definition) { d.DatasetRepoType = "" },
			err:    competition.ErrEmptyDataset,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(&def)
			err := def.Validate()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		desc    string
		data    string
		defs    int
		wantErr error
		invalid bool
	}{
		{
			desc: "valid document",
			data: `[
				{
					"competition_id": "melanoma-1",
					"category": "skin-cancer",
					"evaluation_times": ["09:00", "15:00"],
					"dataset_hf_repo": "safe-scan-ai/melanoma",
					"dataset_hf_filename": "dataset.zip",
					"dataset_hf_repo_type": "dataset"
				}
			]`,
			defs: 1,
		},
		{
			desc: "empty document",
			data: `[]`,
			defs: 0,
		},
		{
			desc:    "malformed json",
			data:    `{not json`,
			invalid: true,
		},
		{
			desc: "single invalid entry fails the whole document",
			data: `[
				{
					"competition_id": "melanoma-1",
					"category": "skin-cancer",
					"evaluation_times": ["09:00"],
					"dataset_hf_repo": "safe-scan-ai/melanoma",
					"dataset_hf_filename": "dataset.zip",
					"dataset_hf_repo_type": "dataset"
				},
				{
					"competition_id": "",
					"category": "skin-cancer",
					"evaluation_times": ["09:00"],
					"dataset_hf_repo": "safe-scan-ai/melanoma",
					"dataset_hf_filename": "dataset.zip",
					"dataset_hf_repo_type": "dataset"
				}
			]`,
			wantErr: competition.ErrEmptyCompetitionID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			defs, err := competition.Parse([]byte(tc.data))
			switch {
			case tc.invalid:
				assert.Error(t, err)
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			default:
				require.NoError(t, err)
				assert.Len(t, defs, tc.defs)
			}
		})
	}
}
