package rules

import (
	"strconv"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// ColumnCompleteness reports how many rows carry a value for one column.
type ColumnCompleteness struct {
	Column        string  `json:"column"`
	PopulatedRows int     `json:"populated_rows"`
	TotalRows     int     `json:"total_rows"`
	PctPopulated  float64 `json:"pct_populated"`
}

// columnAccessors maps each dataset column to its string representation,
// in ExpectedColumns order. A zero revenue or zero date reads back as empty:
// both are indistinguishable from missing after source normalisation.
var columnAccessors = []struct {
	name  string
	value func(core.Issuer) string
}{
	{"issuer_id", func(r core.Issuer) string { return r.IssuerID }},
	{"issuer_code", func(r core.Issuer) string { return r.IssuerCode }},
	{"issuer_name", func(r core.Issuer) string { return r.IssuerName }},
	{"country", func(r core.Issuer) string { return r.Country }},
	{"industry", func(r core.Issuer) string { return r.Industry }},
	{"status", func(r core.Issuer) string { return r.Status }},
	{"created_date", func(r core.Issuer) string {
		if r.CreatedDate.IsZero() {
			return ""
		}
		return r.CreatedDate.Format("2006-01-02")
	}},
	{"annual_revenue", func(r core.Issuer) string {
		if r.AnnualRevenue == 0 {
			return ""
		}
		return strconv.FormatFloat(r.AnnualRevenue, 'f', -1, 64)
	}},
}

// Completeness computes per-column populated counts and percentages, one
// entry per dataset column in declaration order.
func Completeness(rows []core.Issuer) []ColumnCompleteness {
	total := len(rows)
	report := make([]ColumnCompleteness, 0, len(columnAccessors))

	for _, accessor := range columnAccessors {
		populated := 0
		for _, row := range rows {
			if accessor.value(row) != "" {
				populated++
			}
		}

		pct := 0.0
		if total > 0 {
			pct = float64(populated) / float64(total)
		}

		report = append(report, ColumnCompleteness{
			Column:        accessor.name,
			PopulatedRows: populated,
			TotalRows:     total,
			PctPopulated:  pct,
		})
	}

	return report
}
