package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

// SqliteScorecardRepository implements core.ScorecardRepository on SQLite,
// storing each batch of rule results as one JSON row.
type SqliteScorecardRepository struct {
	db *sql.DB
}

// NewSqliteScorecardRepository creates a new SQLite-backed repository.
// dbPath is the filename/path for the database (e.g. "scorecard.db"); an
// existing file is replaced.
func NewSqliteScorecardRepository(dbPath string) (core.ScorecardRepository, error) {
	if err := utils.DeleteDatabaseFileIfExists(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	createStmt := `CREATE TABLE IF NOT EXISTS scorecard_batches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		json_data TEXT
	);`
	if _, err := db.Exec(createStmt); err != nil {
		return nil, fmt.Errorf("failed to create scorecard_batches table: %w", err)
	}

	return &SqliteScorecardRepository{db: db}, nil
}

// Store saves one batch of rule results as a single JSON row.
func (r *SqliteScorecardRepository) Store(results []core.RuleResult) error {
	jsonData, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal rule results: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO scorecard_batches (json_data) VALUES (?)`, string(jsonData))
	if err != nil {
		return fmt.Errorf("failed to insert scorecard batch: %w", err)
	}
	return nil
}

func (r *SqliteScorecardRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM scorecard_batches`)
	return err
}

// NewIterator creates an iterator that loads each stored batch one at a time.
func (r *SqliteScorecardRepository) NewIterator() core.ScorecardIterator {
	return &SqliteScorecardIterator{repo: r}
}

func (r *SqliteScorecardRepository) Close() error {
	return r.db.Close()
}

// SqliteScorecardIterator iterates over the rows in scorecard_batches.
type SqliteScorecardIterator struct {
	repo       *SqliteScorecardRepository
	currentID  int
	currentSet core.ScorecardSet
}

// HasNext tries to load the next row. Unparseable rows are skipped.
func (it *SqliteScorecardIterator) HasNext() bool {
	for {
		err := it.loadNextBatch()
		if err != nil {
			if err.Error() != "no more batches" {
				log.Printf("Error loading row with ID > %d: %v", it.currentID, err)
				it.currentID++
				continue
			}
			return false
		}
		return true
	}
}

// Next returns the last successfully loaded batch.
func (it *SqliteScorecardIterator) Next() (core.ScorecardSet, error) {
	if it.currentSet.Results == nil {
		return core.ScorecardSet{}, fmt.Errorf("no more result sets available")
	}
	return it.currentSet, nil
}

func (it *SqliteScorecardIterator) Reset() error {
	it.currentID = 0
	it.currentSet = core.ScorecardSet{}
	return nil
}

func (it *SqliteScorecardIterator) loadNextBatch() error {
	row := it.repo.db.QueryRow(`
		SELECT id, json_data
		FROM scorecard_batches
		WHERE id > ?
		ORDER BY id ASC
		LIMIT 1
	`, it.currentID)

	var id int
	var jsonData string
	if err := row.Scan(&id, &jsonData); err != nil {
		return fmt.Errorf("no more batches")
	}

	var results []core.RuleResult
	if err := json.Unmarshal([]byte(jsonData), &results); err != nil {
		return fmt.Errorf("failed to parse JSON for row %d: %w", id, err)
	}

	it.currentID = id
	it.currentSet = core.ScorecardSet{Results: results}
	return nil
}
