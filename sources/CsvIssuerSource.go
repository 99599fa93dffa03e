package sources

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/markusmobius/go-dateparser"
	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

// CsvIssuerSource loads issuer rows from a single CSV file with a header row.
// The header must carry exactly the expected issuer columns, in any order.
type CsvIssuerSource struct {
	Path     string
	Progress utils.ProgressReporter
}

func NewCsvIssuerSource(path string) *CsvIssuerSource {
	return &CsvIssuerSource{Path: path}
}

func (s *CsvIssuerSource) Load() ([]core.Issuer, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: err}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Path, Err: fmt.Errorf("failed to read records: %w", err)}
	}

	if s.Progress != nil {
		s.Progress.SetTotal(len(records))
	}

	issuers := make([]core.Issuer, 0, len(records))
	for _, record := range records {
		issuers = append(issuers, parseIssuer(record, columns))
		if s.Progress != nil {
			s.Progress.Increment()
		}
	}

	return issuers, nil
}

// mapColumns validates that the header carries exactly the expected issuer
// columns and returns the index of each.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, exists := columns[normalized]; exists {
			return nil, fmt.Errorf("duplicate column '%s' in header %v", normalized, header)
		}
		columns[normalized] = i
	}

	if len(columns) != len(core.ExpectedColumns) {
		return nil, fmt.Errorf("expected columns %v, got %v", core.ExpectedColumns, header)
	}
	for _, name := range core.ExpectedColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column '%s' in header %v", name, header)
		}
	}

	return columns, nil
}

func parseIssuer(record []string, columns map[string]int) core.Issuer {
	field := func(name string) string {
		index := columns[name]
		if index >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[index])
	}

	issuer := core.Issuer{
		IssuerID:   field("issuer_id"),
		IssuerCode: field("issuer_code"),
		IssuerName: field("issuer_name"),
		Country:    field("country"),
		Industry:   field("industry"),
		Status:     field("status"),
	}

	if raw := field("annual_revenue"); raw != "" {
		revenue, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// Malformed revenue fails the revenue rule instead of aborting
			// the load, keeping the total row count stable.
			log.Warnf("Unparseable annual_revenue '%s' for issuer '%s'", raw, issuer.IssuerID)
		} else {
			issuer.AnnualRevenue = revenue
		}
	}

	if raw := field("created_date"); raw != "" {
		parsed, err := dateparser.Parse(nil, raw)
		if err != nil {
			log.Warnf("Unparseable created_date '%s' for issuer '%s'", raw, issuer.IssuerID)
		} else {
			issuer.CreatedDate = parsed.Time
		}
	}

	return issuer
}
