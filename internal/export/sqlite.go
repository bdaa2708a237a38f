package export

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/hunapertium/internal/dix"
)

// SQLiteExporter stores pairs in the pairs table of an SQLite database
type SQLiteExporter struct {
	path  string
	pair  dix.LangPair
	pairs *pairSet
}

// NewSQLiteExporter creates an exporter writing to the database at path.
// An existing file at path is replaced.
func NewSQLiteExporter(path string, pair dix.LangPair) *SQLiteExporter {
	return &SQLiteExporter{
		path:  path,
		pair:  pair,
		pairs: newPairSet(),
	}
}

// Add records a pair in source→target direction
func (e *SQLiteExporter) Add(entry dix.Entry) {
	e.pairs.add(entry)
}

// Path returns the database file path
func (e *SQLiteExporter) Path() string {
	return e.path
}

// Export creates the database and inserts all pairs in one transaction
func (e *SQLiteExporter) Export() (int, error) {
	if err := os.Remove(e.path); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to remove old database: %w", err)
	}

	db, err := sql.Open("sqlite3", e.path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := e.createTables(db); err != nil {
		return 0, fmt.Errorf("failed to create tables: %w", err)
	}

	n, err := e.insertPairs(db)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pairs: %w", err)
	}

	return n, nil
}

// createTables creates the pairs table and its lookup indexes
func (e *SQLiteExporter) createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE pairs (
			id integer PRIMARY KEY,
			source_lang text NOT NULL,
			target_lang text NOT NULL,
			source text NOT NULL,
			target text NOT NULL,
			UNIQUE (source_lang, target_lang, source, target)
		)`,
		`CREATE INDEX ix_pairs_source ON pairs (source)`,
		`CREATE INDEX ix_pairs_target ON pairs (target)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func (e *SQLiteExporter) insertPairs(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO pairs (source_lang, target_lang, source, target) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, entry := range e.pairs.entries {
		res, err := stmt.Exec(e.pair.Source, e.pair.Target, entry.Source, entry.Target)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", entry.Source, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			count += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return count, nil
}
