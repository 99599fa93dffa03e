package reporters

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

const (
	DefaultJsonReport        = "scorecard_report.json"
	DefaultJsonSummaryReport = "scorecard_summary.json"
)

// JsonReporter generates a detailed scorecard report (one JSON object per
// line) and a summary report keyed by profile query name.
type JsonReporter struct {
	ArtifactPrefix string
	OutputDir      string
}

func (j JsonReporter) Report(repository core.ScorecardRepository, snapshotDBPath string) error {
	if err := j.generateDetailedReport(repository); err != nil {
		return fmt.Errorf("failed to generate detailed JSON report: %w", err)
	}

	if err := j.generateSummaryReport(snapshotDBPath); err != nil {
		return fmt.Errorf("failed to generate summary JSON report: %w", err)
	}

	return nil
}

func (j JsonReporter) outputDir() string {
	if j.OutputDir == "" {
		return "."
	}
	return j.OutputDir
}

func (j JsonReporter) generateDetailedReport(repository core.ScorecardRepository) error {
	outputFilePath := filepath.Join(j.outputDir(), fmt.Sprintf("%s_%s", j.ArtifactPrefix, DefaultJsonReport))

	outputFile, err := os.Create(outputFilePath)
	if err != nil {
		return fmt.Errorf("failed to create detailed output file: %v", err)
	}
	defer outputFile.Close()

	iterator := repository.NewIterator()
	for iterator.HasNext() {
		set, err := iterator.Next()
		if err != nil {
			return fmt.Errorf("failed to retrieve next result set: %w", err)
		}

		jsonBytes, err := json.Marshal(set)
		if err != nil {
			return fmt.Errorf("failed to marshal result set to JSON: %w", err)
		}

		if _, err := outputFile.Write(jsonBytes); err != nil {
			return fmt.Errorf("failed to write to detailed output file: %v", err)
		}
		if _, err := outputFile.WriteString("\n"); err != nil {
			return fmt.Errorf("failed to write newline to detailed output file: %v", err)
		}
	}

	fmt.Printf("Detailed JSON report generated successfully: %s\n", outputFilePath)
	return nil
}

func (j JsonReporter) generateSummaryReport(snapshotDBPath string) error {
	db, err := sql.Open("sqlite3", snapshotDBPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer db.Close()

	queries, err := LoadProfileQueries()
	if err != nil {
		return err
	}

	summaryData := make(map[string]interface{})
	for _, query := range queries.Queries {
		log.Infof("Executing profile query: %s", query.Name)
		_, results, err := executeProfileQuery(db, query.Query)
		if err != nil {
			log.Printf("Skipping query for '%s': %v", query.Name, err)
			continue
		}
		summaryData[query.Name] = results
	}

	outputFilePath := filepath.Join(j.outputDir(), fmt.Sprintf("%s_%s", j.ArtifactPrefix, DefaultJsonSummaryReport))

	summaryBytes, err := json.MarshalIndent(summaryData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary data: %w", err)
	}

	if err := os.WriteFile(outputFilePath, summaryBytes, 0644); err != nil {
		return fmt.Errorf("failed to write summary output file: %v", err)
	}

	fmt.Printf("Summary JSON report generated successfully: %s\n", outputFilePath)
	return nil
}
