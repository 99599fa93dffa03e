package rules

import (
	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// Evaluate runs every rule against an immutable snapshot of rows and returns
// one result per rule, in registration order. It is a pure function: no
// shared state, identical output for identical input.
func Evaluate(rows []core.Issuer, ruleSet []core.Rule) core.Scorecard {
	total := len(rows)
	results := make([]core.RuleResult, 0, len(ruleSet))

	for _, rule := range ruleSet {
		failed := 0
		switch {
		case rule.Aggregate != nil:
			failed = rule.Aggregate(rows)
		case rule.Predicate != nil:
			for _, row := range rows {
				if rule.Predicate(row) {
					failed++
				}
			}
		}

		// Invariant: 0 <= failed <= total.
		if failed < 0 {
			failed = 0
		}
		if failed > total {
			failed = total
		}

		pctFailed := 0.0
		if total > 0 {
			pctFailed = float64(failed) / float64(total)
		}

		results = append(results, core.RuleResult{
			RuleName:   rule.Name,
			FailedRows: failed,
			TotalRows:  total,
			PctFailed:  pctFailed,
		})
	}

	return core.Scorecard{Results: results}
}
