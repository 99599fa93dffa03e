package reporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

func stageSnapshot(t *testing.T, dir string, rows []core.Issuer) string {
	t.Helper()
	dbPath := filepath.Join(dir, "issuers.db")
	db, err := utils.InitializeSnapshotDB(dbPath)
	assert.NoError(t, err)
	assert.NoError(t, utils.InsertIssuers(db, rows))
	assert.NoError(t, db.Close())
	return dbPath
}

func snapshotRows() []core.Issuer {
	return []core.Issuer{
		{IssuerID: "1", IssuerCode: "ACME", IssuerName: "Acme", Country: "US", Industry: "Tech", Status: "active", AnnualRevenue: 100},
		{IssuerID: "2", IssuerCode: "ACME", IssuerName: "Acme Dup", Country: "", AnnualRevenue: 0},
		{IssuerID: "3", IssuerCode: "GLOB", IssuerName: "Globex", Country: "FRA", AnnualRevenue: -10},
	}
}

func scorecardRepo(t *testing.T) core.ScorecardRepository {
	t.Helper()
	repo := &utils.MockScorecardRepository{}
	assert.NoError(t, repo.Store([]core.RuleResult{
		{RuleName: "issuer_code_duplicates", FailedRows: 1, TotalRows: 3, PctFailed: 1.0 / 3.0},
		{RuleName: "country_invalid", FailedRows: 2, TotalRows: 3, PctFailed: 2.0 / 3.0},
		{RuleName: "revenue_invalid", FailedRows: 2, TotalRows: 3, PctFailed: 2.0 / 3.0},
	}))
	return repo
}

func TestJsonReporter_Report(t *testing.T) {
	outputDir := t.TempDir()
	snapshotPath := stageSnapshot(t, outputDir, snapshotRows())

	reporter := JsonReporter{ArtifactPrefix: "issuers", OutputDir: outputDir}
	assert.NoError(t, reporter.Report(scorecardRepo(t), snapshotPath))

	detailedPath := filepath.Join(outputDir, fmt.Sprintf("issuers_%s", DefaultJsonReport))
	detailedData, err := os.ReadFile(detailedPath)
	assert.NoError(t, err)

	var set core.ScorecardSet
	assert.NoError(t, json.Unmarshal([]byte(firstLine(string(detailedData))), &set))
	assert.Len(t, set.Results, 3)
	assert.Equal(t, "issuer_code_duplicates", set.Results[0].RuleName)

	summaryPath := filepath.Join(outputDir, fmt.Sprintf("issuers_%s", DefaultJsonSummaryReport))
	summaryData, err := os.ReadFile(summaryPath)
	assert.NoError(t, err)

	var summary map[string][]map[string]interface{}
	assert.NoError(t, json.Unmarshal(summaryData, &summary))

	assert.Len(t, summary["Duplicate Issuer Codes"], 2)
	assert.Len(t, summary["Country Frequency"], 3)

	completeness := summary["Column Completeness"][0]
	assert.Equal(t, float64(3), completeness["total_rows"])
	assert.Equal(t, float64(2), completeness["country_populated"])
	assert.Equal(t, float64(2), completeness["annual_revenue_populated"])
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
