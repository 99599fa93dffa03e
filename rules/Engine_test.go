package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

func issuersWithCodes(codes ...string) []core.Issuer {
	rows := make([]core.Issuer, 0, len(codes))
	for i, code := range codes {
		rows = append(rows, core.Issuer{
			IssuerID:      string(rune('a' + i)),
			IssuerCode:    code,
			Country:       "US",
			AnnualRevenue: 100,
		})
	}
	return rows
}

func TestEvaluate_DuplicateIssuerCodes(t *testing.T) {
	rows := issuersWithCodes("A", "A", "B", "C", "C", "C")

	scorecard := Evaluate(rows, InitializeRules(DefaultSettings()))

	duplicates := scorecard.Results[0]
	assert.Equal(t, "issuer_code_duplicates", duplicates.RuleName)
	assert.Equal(t, 3, duplicates.FailedRows) // 1 extra A, 2 extra C
	assert.Equal(t, 6, duplicates.TotalRows)
}

func TestEvaluate_CountryInvalid(t *testing.T) {
	countries := []string{"US", "", "", "USA", "FR"}
	rows := make([]core.Issuer, 0, len(countries))
	for _, country := range countries {
		rows = append(rows, core.Issuer{Country: country, AnnualRevenue: 100})
	}

	scorecard := Evaluate(rows, InitializeRules(DefaultSettings()))

	country := scorecard.Results[1]
	assert.Equal(t, "country_invalid", country.RuleName)
	assert.Equal(t, 3, country.FailedRows)
	assert.Equal(t, 5, country.TotalRows)
}

func TestEvaluate_RevenueInvalid(t *testing.T) {
	revenues := []float64{100, 0, -50, 200}
	rows := make([]core.Issuer, 0, len(revenues))
	for _, revenue := range revenues {
		rows = append(rows, core.Issuer{Country: "US", AnnualRevenue: revenue})
	}

	scorecard := Evaluate(rows, InitializeRules(DefaultSettings()))

	revenue := scorecard.Results[2]
	assert.Equal(t, "revenue_invalid", revenue.RuleName)
	assert.Equal(t, 2, revenue.FailedRows)
	assert.Equal(t, 4, revenue.TotalRows)
}

func TestEvaluate_EmptyDataset(t *testing.T) {
	scorecard := Evaluate(nil, InitializeRules(DefaultSettings()))

	assert.Len(t, scorecard.Results, 3)
	for _, result := range scorecard.Results {
		assert.Equal(t, 0, result.FailedRows)
		assert.Equal(t, 0, result.TotalRows)
		assert.Equal(t, 0.0, result.PctFailed)
	}
}

func TestEvaluate_RegistrationOrder(t *testing.T) {
	scorecard := Evaluate(issuersWithCodes("A", "B"), InitializeRules(DefaultSettings()))

	names := make([]string, 0, len(scorecard.Results))
	for _, result := range scorecard.Results {
		names = append(names, result.RuleName)
	}
	assert.Equal(t, []string{"issuer_code_duplicates", "country_invalid", "revenue_invalid"}, names)
}

func TestEvaluate_Idempotent(t *testing.T) {
	rows := issuersWithCodes("A", "A", "B")
	ruleSet := InitializeRules(DefaultSettings())

	first := Evaluate(rows, ruleSet)
	second := Evaluate(rows, ruleSet)

	assert.Equal(t, first, second)
}

func TestEvaluate_Invariants(t *testing.T) {
	rows := []core.Issuer{
		{IssuerCode: "A", Country: "ZZZ", AnnualRevenue: -1},
		{IssuerCode: "A", Country: "", AnnualRevenue: 0},
		{IssuerCode: "A"},
	}

	scorecard := Evaluate(rows, InitializeRules(DefaultSettings()))

	for _, result := range scorecard.Results {
		assert.GreaterOrEqual(t, result.FailedRows, 0)
		assert.LessOrEqual(t, result.FailedRows, result.TotalRows)
	}
}

func TestEvaluate_PctFailed(t *testing.T) {
	rows := []core.Issuer{
		{IssuerCode: "A", Country: "US", AnnualRevenue: 100},
		{IssuerCode: "B", Country: "USA", AnnualRevenue: 100},
	}

	scorecard := Evaluate(rows, InitializeRules(DefaultSettings()))

	country := scorecard.Results[1]
	assert.Equal(t, 0.5, country.PctFailed)
}
