package rules

import (
	"sort"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// CountExtraIssuerCodes counts the rows beyond the first occurrence of each
// issuer_code: a group of N identical codes contributes N-1. A code that
// appears exactly once contributes nothing. Blank codes group together like
// any other value.
func CountExtraIssuerCodes(rows []core.Issuer) int {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.IssuerCode]++
	}

	extra := 0
	for _, count := range counts {
		if count > 1 {
			extra += count - 1
		}
	}
	return extra
}

// DuplicateIssuer is a duplicated row annotated with its group size.
type DuplicateIssuer struct {
	core.Issuer
	DuplicateCount int `json:"duplicate_count"`
}

// DuplicateDetails lists every row whose issuer_code appears more than once,
// ordered by issuer_code then issuer_id.
func DuplicateDetails(rows []core.Issuer) []DuplicateIssuer {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.IssuerCode]++
	}

	var details []DuplicateIssuer
	for _, row := range rows {
		if counts[row.IssuerCode] > 1 {
			details = append(details, DuplicateIssuer{Issuer: row, DuplicateCount: counts[row.IssuerCode]})
		}
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].IssuerCode != details[j].IssuerCode {
			return details[i].IssuerCode < details[j].IssuerCode
		}
		return details[i].IssuerID < details[j].IssuerID
	})

	return details
}
