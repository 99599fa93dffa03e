package reporters

import (
	"database/sql"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

//go:embed data/profile_queries.yaml
var profileQueriesFS embed.FS

// LoadProfileQueries parses the embedded SQL query pack run against the
// issuers snapshot for the supporting profile sheets.
func LoadProfileQueries() (core.ProfileQueries, error) {
	content, err := profileQueriesFS.ReadFile("data/profile_queries.yaml")
	if err != nil {
		return core.ProfileQueries{}, fmt.Errorf("failed to read embedded profile queries: %w", err)
	}

	var queries core.ProfileQueries
	if err := yaml.Unmarshal(content, &queries); err != nil {
		return core.ProfileQueries{}, fmt.Errorf("failed to unmarshal profile queries: %w", err)
	}

	return queries, nil
}

// executeProfileQuery runs a SQL query and returns ordered column names plus
// one value map per row. []byte values come back as strings.
func executeProfileQuery(db *sql.DB, query string) ([]string, []map[string]interface{}, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute query '%s': %w", query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve columns for query '%s': %w", query, err)
	}

	var results []map[string]interface{}

	for rows.Next() {
		columnValues := make([]interface{}, len(columns))
		columnPointers := make([]interface{}, len(columns))
		for i := range columnValues {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row for query '%s': %w", query, err)
		}

		rowData := make(map[string]interface{})
		for i, colName := range columns {
			value := columnValues[i]
			if b, ok := value.([]byte); ok {
				rowData[colName] = string(b)
			} else {
				rowData[colName] = value
			}
		}

		results = append(results, rowData)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("row iteration error for query '%s': %w", query, err)
	}

	return columns, results, nil
}
