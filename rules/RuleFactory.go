package rules

import (
	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

// InitializeRules returns the issuer scorecard registry. The order is fixed
// (duplicates, country, revenue) so scorecards stay comparable across runs.
func InitializeRules(settings Settings) []core.Rule {
	registry := []core.Rule{
		{Name: "issuer_code_duplicates", Aggregate: CountExtraIssuerCodes},
		{Name: "country_invalid", Predicate: countryInvalid(settings.CountryCodeLength)},
		{Name: "revenue_invalid", Predicate: revenueInvalid(settings.MinAnnualRevenue)},
	}

	if len(settings.DisabledRules) == 0 {
		return registry
	}

	enabled := make([]core.Rule, 0, len(registry))
	for _, rule := range registry {
		if !utils.Contains(settings.DisabledRules, rule.Name) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}
