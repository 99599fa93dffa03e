package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

func TestRunHistory_AppendAndList(t *testing.T) {
	history := RunHistory{Path: filepath.Join(t.TempDir(), "runs.db")}

	scorecard := core.Scorecard{Results: []core.RuleResult{
		{RuleName: "country_invalid", FailedRows: 1, TotalRows: 4, PctFailed: 0.25},
	}}

	assert.NoError(t, history.AppendRun("issuers.csv", scorecard))
	assert.NoError(t, history.AppendRun("issuers.csv", scorecard))

	records, err := history.ListRuns()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "issuers.csv", records[0].Dataset)
	assert.Equal(t, scorecard, records[0].Scorecard)
	assert.NotEqual(t, records[0].ID, records[1].ID)
	assert.False(t, records[0].RecordedAt.After(records[1].RecordedAt))
}

func TestRunHistory_ListEmpty(t *testing.T) {
	history := RunHistory{Path: filepath.Join(t.TempDir(), "runs.db")}

	records, err := history.ListRuns()
	assert.NoError(t, err)
	assert.Empty(t, records)
}
