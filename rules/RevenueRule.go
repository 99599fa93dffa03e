package rules

import (
	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// revenueInvalid fails a row whose annual revenue is at or below the floor.
// Sources normalise missing or unparseable revenue to zero, so malformed
// values land here as failures rather than aborting the load.
func revenueInvalid(minRevenue float64) func(core.Issuer) bool {
	return func(row core.Issuer) bool {
		return row.AnnualRevenue <= minRevenue
	}
}
