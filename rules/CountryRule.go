package rules

import (
	"unicode/utf8"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// countryInvalid fails a row whose country is missing or not exactly
// codeLength characters long. An empty string covers the missing case since
// sources normalise absent values to "".
func countryInvalid(codeLength int) func(core.Issuer) bool {
	return func(row core.Issuer) bool {
		return utf8.RuneCountInString(row.Country) != codeLength
	}
}
