package core

import "fmt"

// IssuerSource yields an immutable snapshot of issuer rows. Callers scope a
// single Load per scorecard run; sources do not cache.
type IssuerSource interface {
	Load() ([]Issuer, error)
}

// DataSourceError reports an unreachable or malformed dataset (missing file,
// wrong column set). It is fatal and surfaced to the caller verbatim.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source '%s': %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
