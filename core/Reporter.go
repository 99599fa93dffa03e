package core

// Reporter renders the stored scorecard together with the SQLite snapshot of
// the profiled dataset (used for the supporting profile queries).
type Reporter interface {
	Report(repository ScorecardRepository, snapshotDBPath string) error
}
