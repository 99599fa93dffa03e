package core

type ScorecardSet struct {
	Results []RuleResult `json:"resultSet"`
}

type ScorecardRepository interface {
	Store(results []RuleResult) error
	Clear() error
	NewIterator() ScorecardIterator
	Close() error
}

type ScorecardIterator interface {
	HasNext() bool
	Next() (ScorecardSet, error)
	Reset() error
}
