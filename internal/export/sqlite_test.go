package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/hunapertium/internal/dix"
	"codeberg.org/snonux/hunapertium/internal/testutil"
)

func TestNewSQLiteExporter(t *testing.T) {
	e := NewSQLiteExporter("pairs.db", dix.LangPair{Source: "en", Target: "es"})

	if e == nil {
		t.Fatal("NewSQLiteExporter returned nil")
	}
	if e.Path() != "pairs.db" {
		t.Errorf("Expected path 'pairs.db', got '%s'", e.Path())
	}
	if len(e.pairs.entries) != 0 {
		t.Errorf("Expected no pairs, got %d", len(e.pairs.entries))
	}
}

func TestSQLiteExport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "en-es.db")
	// A stale file at the destination is replaced
	testutil.CreateTestFile(t, dbPath, []byte("not a database"))

	e := NewSQLiteExporter(dbPath, dix.LangPair{Source: "en", Target: "es"})
	e.Add(dix.Entry{Source: "cat", Target: "gato"})
	e.Add(dix.Entry{Source: "dog", Target: "perro"})
	e.Add(dix.Entry{Source: "cat", Target: "gato"})

	n, err := e.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Export() = %d, want 2", n)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM pairs").Scan(&count); err != nil {
		t.Fatalf("Failed to count pairs: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows, got %d", count)
	}

	var srcLang, tgtLang, target string
	err = db.QueryRow("SELECT source_lang, target_lang, target FROM pairs WHERE source = ?", "dog").
		Scan(&srcLang, &tgtLang, &target)
	if err != nil {
		t.Fatalf("Failed to query pair: %v", err)
	}
	if srcLang != "en" || tgtLang != "es" || target != "perro" {
		t.Errorf("Unexpected row: %s %s %s", srcLang, tgtLang, target)
	}
}

func TestSQLiteExport_InvalidPath(t *testing.T) {
	e := NewSQLiteExporter(filepath.Join(t.TempDir(), "missing", "pairs.db"), dix.LangPair{Source: "en", Target: "es"})
	e.Add(dix.Entry{Source: "cat", Target: "gato"})

	if _, err := e.Export(); err == nil {
		t.Error("Expected error for database in missing directory")
	}
}
