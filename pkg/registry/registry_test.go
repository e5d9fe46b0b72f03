package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safe-scan-ai/announcer/competition"
	"github.com/safe-scan-ai/announcer/pkg/errors"
	"github.com/safe-scan-ai/announcer/pkg/registry"
)

func testDefinition(id string) competition.Definition {
	return competition.Definition{
		ID:              id,
		Category:        "skin-cancer",
		EvaluationTimes: []string{"09:00", "15:00"},
		DatasetRepo:     "safe-scan-ai/melanoma",
		DatasetFilename: "dataset.zip",
		DatasetRepoType: "dataset",
	}
}

func TestReplace(t *testing.T) {
	r := registry.New()
	assert.Equal(t, 0, r.Len())

	r.Replace([]competition.Definition{testDefinition("melanoma-1"), testDefinition("melanoma-2")})
	assert.Equal(t, 2, r.Len())

	r.Replace([]competition.Definition{testDefinition("melanoma-3")})
	assert.Equal(t, 1, r.Len())

	_, err := r.Get("melanoma-1")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestListReturnsSnapshot(t *testing.T) {
	r := registry.New()
	defs := []competition.Definition{testDefinition("melanoma-1")}
	r.Replace(defs)

	listed := r.List()
	require.Len(t, listed, 1)

	listed[0].ID = "mutated"
	again := r.List()
	assert.Equal(t, "melanoma-1", again[0].ID)

	defs[0].ID = "mutated-source"
	again = r.List()
	assert.Equal(t, "melanoma-1", again[0].ID)
}

func TestGet(t *testing.T) {
	r := registry.New()
	r.Replace([]competition.Definition{testDefinition("melanoma-1")})

	cases := []struct {
		desc string
		id   string
		err  error
	}{
		{
			desc: "existing competition",
			id:   "melanoma-1",
		},
		{
			desc: "missing competition",
			id:   "melanoma-2",
			err:  errors.ErrNotFound,
		},
		{
			desc: "empty id",
			id:   "",
			err:  errors.ErrEmptyID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			def, err := r.Get(tc.id)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, def.ID)
		})
	}
}
