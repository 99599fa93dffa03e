package sources

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/markusmobius/go-dateparser"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

const DefaultIssuersTable = "Issuers"

// SqliteIssuerSource loads issuer rows from a table in a SQLite database.
type SqliteIssuerSource struct {
	Path  string
	Table string
}

func (s *SqliteIssuerSource) Load() ([]core.Issuer, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: err}
	}

	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: err}
	}
	defer db.Close()

	table := s.Table
	if table == "" {
		table = DefaultIssuersTable
	}

	query := fmt.Sprintf(`
		SELECT issuer_id, issuer_code, issuer_name, country, industry, status, created_date, annual_revenue
		FROM %s
	`, table)

	rows, err := db.Query(query)
	if err != nil {
		// Missing table or a renamed column both surface here.
		return nil, &core.DataSourceError{Source: s.Path, Err: fmt.Errorf("failed to query table '%s': %w", table, err)}
	}
	defer rows.Close()

	var issuers []core.Issuer
	for rows.Next() {
		var issuerID, issuerCode, issuerName, country, industry, status, createdDate sql.NullString
		var annualRevenue sql.NullFloat64

		if err := rows.Scan(&issuerID, &issuerCode, &issuerName, &country, &industry, &status, &createdDate, &annualRevenue); err != nil {
			return nil, &core.DataSourceError{Source: s.Path, Err: fmt.Errorf("failed to scan row: %w", err)}
		}

		issuer := core.Issuer{
			IssuerID:      issuerID.String,
			IssuerCode:    issuerCode.String,
			IssuerName:    issuerName.String,
			Country:       country.String,
			Industry:      industry.String,
			Status:        status.String,
			AnnualRevenue: annualRevenue.Float64,
		}

		if createdDate.Valid && createdDate.String != "" {
			parsed, err := dateparser.Parse(nil, createdDate.String)
			if err != nil {
				log.Warnf("Unparseable created_date '%s' for issuer '%s'", createdDate.String, issuer.IssuerID)
			} else {
				issuer.CreatedDate = parsed.Time
			}
		}

		issuers = append(issuers, issuer)
	}

	if err := rows.Err(); err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: fmt.Errorf("row iteration error: %w", err)}
	}

	return issuers, nil
}
