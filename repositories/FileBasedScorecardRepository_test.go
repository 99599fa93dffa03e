package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

func sampleResults() []core.RuleResult {
	return []core.RuleResult{
		{RuleName: "issuer_code_duplicates", FailedRows: 2, TotalRows: 6, PctFailed: 2.0 / 6.0},
		{RuleName: "country_invalid", FailedRows: 3, TotalRows: 6, PctFailed: 0.5},
	}
}

func TestFileBasedScorecardRepository_StoreAndIterate(t *testing.T) {
	repository := NewFileBasedScorecardRepository()
	defer repository.Clear()

	assert.NoError(t, repository.Store(sampleResults()))

	iterator := repository.NewIterator()
	assert.True(t, iterator.HasNext())

	set, err := iterator.Next()
	assert.NoError(t, err)
	assert.Equal(t, sampleResults(), set.Results)

	assert.False(t, iterator.HasNext())
}

func TestFileBasedScorecardRepository_Reset(t *testing.T) {
	repository := NewFileBasedScorecardRepository()
	defer repository.Clear()

	assert.NoError(t, repository.Store(sampleResults()))

	iterator := repository.NewIterator()
	assert.True(t, iterator.HasNext())
	assert.False(t, iterator.HasNext())

	assert.NoError(t, iterator.Reset())
	assert.True(t, iterator.HasNext())
}

func TestFileBasedScorecardRepository_Clear(t *testing.T) {
	repository := NewFileBasedScorecardRepository()

	assert.NoError(t, repository.Store(sampleResults()))
	assert.NoError(t, repository.Clear())

	iterator := repository.NewIterator()
	assert.False(t, iterator.HasNext())
}
