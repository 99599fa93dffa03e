package utils

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// InitializeSnapshotDB opens (or recreates) the SQLite snapshot database the
// profile queries run against, and applies the issuers schema.
func InitializeSnapshotDB(dbPath string) (*sql.DB, error) {

	if err := DeleteDatabaseFileIfExists(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// One-shot bulk load; durability does not matter for a throwaway snapshot.
	_, _ = db.Exec("PRAGMA journal_mode = WAL;")
	_, _ = db.Exec("PRAGMA synchronous = OFF;")

	createStmt := `CREATE TABLE IF NOT EXISTS Issuers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		issuer_id TEXT,
		issuer_code TEXT,
		issuer_name TEXT,
		country TEXT,
		industry TEXT,
		status TEXT,
		created_date TEXT,
		annual_revenue REAL
	);`

	if _, err := db.Exec(createStmt); err != nil {
		return nil, fmt.Errorf("failed to create issuers table: %w", err)
	}

	return db, nil
}

// InsertIssuers bulk-inserts rows in a single transaction.
func InsertIssuers(db *sql.DB, rows []core.Issuer) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO Issuers (issuer_id, issuer_code, issuer_name, country, industry, status, created_date, annual_revenue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		createdDate := ""
		if !row.CreatedDate.IsZero() {
			createdDate = row.CreatedDate.Format("2006-01-02")
		}

		_, execErr := stmt.Exec(
			row.IssuerID,
			row.IssuerCode,
			row.IssuerName,
			row.Country,
			row.Industry,
			row.Status,
			createdDate,
			row.AnnualRevenue,
		)
		if execErr != nil {
			return fmt.Errorf("failed to insert issuer '%s': %w", row.IssuerID, execErr)
		}
	}

	return nil
}
