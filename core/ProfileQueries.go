package core

type ProfileQuery struct {
	Name  string `yaml:"name"`
	Query string `yaml:"query"`
}

// ProfileQueries holds the named SQL queries run against a dataset snapshot.
type ProfileQueries struct {
	Queries []ProfileQuery `yaml:"queries"`
}
