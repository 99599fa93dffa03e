package core

import "time"

// ExpectedColumns is the exact column set an issuers dataset must provide.
// Sources reject datasets that carry a different set.
var ExpectedColumns = []string{
	"issuer_id",
	"issuer_code",
	"issuer_name",
	"country",
	"industry",
	"status",
	"created_date",
	"annual_revenue",
}

// Issuer is one reference-data record for a tracked business entity.
// AnnualRevenue is normalised to zero when the source value is missing or
// unparseable, so such rows fail the revenue rule instead of aborting a load.
type Issuer struct {
	IssuerID      string    `json:"issuer_id"`
	IssuerCode    string    `json:"issuer_code"`
	IssuerName    string    `json:"issuer_name"`
	Country       string    `json:"country"`
	Industry      string    `json:"industry"`
	Status        string    `json:"status"`
	CreatedDate   time.Time `json:"created_date,omitempty"`
	AnnualRevenue float64   `json:"annual_revenue"`
}
