package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleDix is a small en-es Apertium dictionary used across tests. It
// holds one malformed record and one duplicate pair.
const SampleDix = `<?xml version="1.0" encoding="UTF-8"?>
<dictionary>
  <alphabet/>
  <section id="main" type="standard">
    <e><p><l>cat<s n="n"/></l><r>gato<s n="n"/><s n="m"/></r></p></e>
    <e><p><l>ice<b/>cream<s n="n"/></l><r>helado<s n="n"/></r></p></e>
    <e><p><l>broken</l></p></e>
    <e><p><l>cat<s n="n"/></l><r>gato<s n="n"/></r></p></e>
    <e><p><l>cat</l><r>felino</r></p></e>
  </section>
</dictionary>
`

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestDix writes content to a .dix file named after the language
// pair inside dir and returns its path.
func CreateTestDix(t *testing.T, dir, pair, content string) string {
	t.Helper()

	path := filepath.Join(dir, "apertium-"+pair+"."+pair+".dix")
	CreateTestFile(t, path, []byte(content))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// ReadLines returns the newline separated lines of a file, without the
// trailing empty element.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
