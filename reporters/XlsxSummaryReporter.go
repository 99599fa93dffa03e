package reporters

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

const XlsxSummaryReport = "summary_report.xlsx"

// XlsxSummaryReporter writes the scorecard to one sheet and each profile
// query result to its own sheet.
type XlsxSummaryReporter struct {
	ArtifactPrefix string
	OutputDir      string
}

func (xr XlsxSummaryReporter) Report(repository core.ScorecardRepository, snapshotDBPath string) error {
	fmt.Println("Generating Summary XLSX file")

	db, err := sql.Open("sqlite3", snapshotDBPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer db.Close()

	excelFile := excelize.NewFile()
	excelFile.SetSheetName(excelFile.GetSheetName(0), "Scorecard")

	if err := xr.writeScorecardSheet(excelFile, repository); err != nil {
		return fmt.Errorf("failed to write scorecard sheet: %w", err)
	}

	queries, err := LoadProfileQueries()
	if err != nil {
		return err
	}

	for _, query := range queries.Queries {
		log.Infof("Executing profile query: %s", query.Name)
		if err := xr.executeAndWriteQuery(db, excelFile, query.Query, query.Name); err != nil {
			return fmt.Errorf("failed to write query result for '%s': %w", query.Name, err)
		}
	}

	outputDir := xr.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	outputFilePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s", xr.ArtifactPrefix, XlsxSummaryReport))

	if err := excelFile.SaveAs(outputFilePath); err != nil {
		return fmt.Errorf("failed to save summary report: %w", err)
	}

	fmt.Printf("Summary XLSX report generated successfully: %s\n", outputFilePath)
	return nil
}

func (xr XlsxSummaryReporter) writeScorecardSheet(excelFile *excelize.File, repository core.ScorecardRepository) error {
	header := []interface{}{"rule_name", "failed_rows", "total_rows", "pct_failed"}
	if err := excelFile.SetSheetRow("Scorecard", "A1", &header); err != nil {
		return err
	}

	rowIndex := 2
	iterator := repository.NewIterator()
	for iterator.HasNext() {
		set, err := iterator.Next()
		if err != nil {
			return fmt.Errorf("failed to retrieve next result set: %w", err)
		}
		for _, result := range set.Results {
			cell := fmt.Sprintf("A%d", rowIndex)
			row := []interface{}{result.RuleName, result.FailedRows, result.TotalRows, result.PctFailed}
			if err := excelFile.SetSheetRow("Scorecard", cell, &row); err != nil {
				return err
			}
			rowIndex++
		}
	}
	return nil
}

func (xr XlsxSummaryReporter) executeAndWriteQuery(db *sql.DB, excelFile *excelize.File, query string, sheetName string) error {
	columns, results, err := executeProfileQuery(db, query)
	if err != nil {
		return err
	}

	if _, err := excelFile.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet '%s': %w", sheetName, err)
	}

	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	if err := excelFile.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, result := range results {
		row := make([]interface{}, len(columns))
		for j, column := range columns {
			row[j] = result[column]
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := excelFile.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
