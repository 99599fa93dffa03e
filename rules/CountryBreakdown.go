package rules

import (
	"sort"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// EmptyCountryLabel stands in for rows with no country value in the
// frequency breakdown.
const EmptyCountryLabel = "EMPTY"

type CountryCount struct {
	Country string `json:"country"`
	Rows    int    `json:"rows"`
}

// CountryBreakdown returns the country frequency, busiest first, ties broken
// alphabetically so the output is stable.
func CountryBreakdown(rows []core.Issuer) []CountryCount {
	counts := make(map[string]int)
	for _, row := range rows {
		country := row.Country
		if country == "" {
			country = EmptyCountryLabel
		}
		counts[country]++
	}

	breakdown := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		breakdown = append(breakdown, CountryCount{Country: country, Rows: count})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Rows != breakdown[j].Rows {
			return breakdown[i].Rows > breakdown[j].Rows
		}
		return breakdown[i].Country < breakdown[j].Country
	})

	return breakdown
}
