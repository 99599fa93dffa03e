package core

// Rule is a named data-quality check. Exactly one of Predicate or Aggregate
// is set: Predicate marks an individual row as failing, Aggregate computes
// the failed-row count over the whole dataset in one pass (used for checks
// that need grouping, such as duplicate counting).
type Rule struct {
	Name      string
	Predicate func(Issuer) bool
	Aggregate func([]Issuer) int
}

// RuleResult is one scorecard line. FailedRows never exceeds TotalRows and
// PctFailed is zero for an empty dataset.
type RuleResult struct {
	RuleName   string  `json:"rule_name"`
	FailedRows int     `json:"failed_rows"`
	TotalRows  int     `json:"total_rows"`
	PctFailed  float64 `json:"pct_failed"`
}

// Scorecard holds one RuleResult per registered rule, in registration order.
type Scorecard struct {
	Results []RuleResult `json:"results"`
}
