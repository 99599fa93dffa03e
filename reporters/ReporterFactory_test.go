package reporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReporter(t *testing.T) {
	testCases := []struct {
		format    string
		expectErr bool
	}{
		{"xlsx", false},
		{"json", false},
		{"csv", true},
		{"", true},
	}

	for _, tc := range testCases {
		reporter, err := CreateReporter(tc.format, ".", "issuers")
		if tc.expectErr {
			assert.Error(t, err, "format %q", tc.format)
			assert.Nil(t, reporter)
		} else {
			assert.NoError(t, err, "format %q", tc.format)
			assert.NotNil(t, reporter)
		}
	}
}

func TestLoadProfileQueries(t *testing.T) {
	queries, err := LoadProfileQueries()

	assert.NoError(t, err)
	assert.Len(t, queries.Queries, 3)

	names := make([]string, 0, len(queries.Queries))
	for _, query := range queries.Queries {
		assert.NotEmpty(t, query.Query)
		names = append(names, query.Name)
	}
	assert.Equal(t, []string{"Column Completeness", "Duplicate Issuer Codes", "Country Frequency"}, names)
}
