package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"codeberg.org/snonux/hunapertium/internal/dix"
)

// AnkiExporter writes pairs as a two column CSV file for Anki's
// "Basic" note type: source word on the front, translation on the back.
type AnkiExporter struct {
	path           string
	includeHeaders bool
	pairs          *pairSet
}

// NewAnkiExporter creates an exporter writing to path
func NewAnkiExporter(path string) *AnkiExporter {
	return &AnkiExporter{
		path:           path,
		includeHeaders: true,
		pairs:          newPairSet(),
	}
}

// Add records a pair
func (e *AnkiExporter) Add(entry dix.Entry) {
	e.pairs.add(entry)
}

// Path returns the CSV file path
func (e *AnkiExporter) Path() string {
	return e.path
}

// Export writes the CSV file
func (e *AnkiExporter) Export() (int, error) {
	file, err := os.Create(e.path)
	if err != nil {
		return 0, fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if e.includeHeaders {
		if err := writer.Write([]string{"Front", "Back"}); err != nil {
			return 0, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, entry := range e.pairs.entries {
		if err := writer.Write([]string{entry.Source, entry.Target}); err != nil {
			return 0, fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return len(e.pairs.entries), file.Close()
}
