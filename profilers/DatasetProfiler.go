package profilers

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/rules"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

// DatasetProfiler wires a dataset source to the rule engine, a scorecard
// repository and a reporter. One Profile call is one complete scorecard run
// over a fresh snapshot of the dataset.
type DatasetProfiler struct {
	Source     core.IssuerSource
	Rules      []core.Rule
	Repository core.ScorecardRepository
	Reporter   core.Reporter
	History    *utils.RunHistory

	// SnapshotDir is where the SQLite snapshot for the profile queries is
	// written; defaults to the temp directory.
	SnapshotDir string
}

func (p *DatasetProfiler) Profile(datasetName string) error {
	rows, err := p.Source.Load()
	if err != nil {
		// DataSourceError aborts the run and is surfaced verbatim.
		return err
	}
	log.Infof("Loaded %d issuer rows from '%s'", len(rows), datasetName)
	logProfileSummary(rows)

	scorecard := rules.Evaluate(rows, p.Rules)
	if err := p.Repository.Store(scorecard.Results); err != nil {
		return fmt.Errorf("failed to store scorecard: %w", err)
	}

	snapshotPath, err := p.stageSnapshot(datasetName, rows)
	if err != nil {
		return err
	}

	if err := p.Reporter.Report(p.Repository, snapshotPath); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if p.History != nil {
		if err := p.History.AppendRun(datasetName, scorecard); err != nil {
			// History is a convenience; a failed append never fails the run.
			log.Errorf("Failed to record run history: %v", err)
		}
	}

	return nil
}

// logProfileSummary surfaces the in-memory dataset profiles in the run log,
// so the headline numbers are visible without opening the report.
func logProfileSummary(rows []core.Issuer) {
	for _, column := range rules.Completeness(rows) {
		if column.PopulatedRows < column.TotalRows {
			log.Infof("Column '%s' populated in %d of %d rows", column.Column, column.PopulatedRows, column.TotalRows)
		}
	}

	if duplicates := rules.DuplicateDetails(rows); len(duplicates) > 0 {
		log.Infof("%d rows share a duplicated issuer_code (%d beyond first occurrence)",
			len(duplicates), rules.CountExtraIssuerCodes(rows))
	}

	if breakdown := rules.CountryBreakdown(rows); len(breakdown) > 0 {
		top := breakdown[0]
		log.Infof("Most frequent country '%s' covers %d of %d rows", top.Country, top.Rows, len(rows))
	}
}

// stageSnapshot loads the row snapshot into a throwaway SQLite database for
// the reporters' profile queries.
func (p *DatasetProfiler) stageSnapshot(datasetName string, rows []core.Issuer) (string, error) {
	snapshotDir := p.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = os.TempDir()
	}
	snapshotPath := filepath.Join(snapshotDir, fmt.Sprintf("%s_issuers.db", utils.SanitizeForDB(datasetName)))

	db, err := utils.InitializeSnapshotDB(snapshotPath)
	if err != nil {
		return "", fmt.Errorf("failed to initialize snapshot database: %w", err)
	}
	defer db.Close()

	if err := utils.InsertIssuers(db, rows); err != nil {
		return "", fmt.Errorf("failed to stage issuer rows: %w", err)
	}

	return snapshotPath, nil
}
