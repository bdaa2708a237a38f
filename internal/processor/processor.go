package processor

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"codeberg.org/snonux/hunapertium/internal/archive"
	"codeberg.org/snonux/hunapertium/internal/cli"
	"codeberg.org/snonux/hunapertium/internal/dictionary"
	"codeberg.org/snonux/hunapertium/internal/dix"
	"codeberg.org/snonux/hunapertium/internal/export"
)

// Summary holds the statistics of one conversion
type Summary struct {
	Entries    int
	Skipped    int
	Forward    DictionaryStats
	Backward   DictionaryStats
	Archived   []string
	Exported   map[string]int
	ExportErrs map[string]error
}

// DictionaryStats describes one written dictionary file
type DictionaryStats struct {
	Path       string
	Lines      int
	Duplicates int
}

// Processor converts Apertium dictionaries
type Processor struct {
	flags  *cli.Flags
	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a new converter
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:  flags,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects progress messages and warnings
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// Convert turns the Apertium dictionary at inputPath into two hunalign
// dictionaries in the output directory. Entries that cannot be parsed or
// encoded are reported and skipped; any other error aborts the run.
func (p *Processor) Convert(inputPath string) (*Summary, error) {
	fmt.Fprintf(p.stdout, "File: %s\n", inputPath)

	pair, err := dix.ParseLangPair(inputPath)
	if err != nil {
		return nil, err
	}

	forwardPath := filepath.Join(p.flags.OutputDir, pair.FileName(p.flags.Prefix))
	backwardPath := filepath.Join(p.flags.OutputDir, pair.Reverse().FileName(p.flags.Prefix))

	fmt.Fprintf(p.stdout, "Source language: %s\n", pair.Source)
	fmt.Fprintf(p.stdout, "Target language: %s\n", pair.Target)
	fmt.Fprintf(p.stdout, "Dictionaries to be created:\n")
	fmt.Fprintf(p.stdout, "%s\n", forwardPath)
	fmt.Fprintf(p.stdout, "%s\n", backwardPath)
	fmt.Fprintf(p.stdout, "Dictionary encoding: %s\n", p.flags.Encoding)

	enc, err := dictionary.LookupEncoding(p.flags.Encoding)
	if err != nil {
		return nil, err
	}

	text, err := readInput(inputPath)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Exported:   make(map[string]int),
		ExportErrs: make(map[string]error),
	}

	if p.flags.Archive {
		summary.Archived, err = archive.ArchiveFiles([]string{forwardPath, backwardPath})
		for _, path := range summary.Archived {
			fmt.Fprintf(p.stdout, "Archived previous dictionary to: %s\n", path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to archive dictionaries: %w", err)
		}
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := dictionary.Options{Encoding: enc, Sorted: p.flags.Sort}

	forward, err := dictionary.Create(forwardPath, opts)
	if err != nil {
		return nil, err
	}
	defer forward.Close()

	backward, err := dictionary.Create(backwardPath, opts)
	if err != nil {
		return nil, err
	}
	defer backward.Close()

	exporters := p.exporters(pair)

	for _, result := range dix.Extract(text) {
		summary.Entries++

		if err := p.writeEntry(result, forward, backward); err != nil {
			fmt.Fprintf(p.stdout, "Error in entry: %s (%v)\n", result.Raw, err)
			summary.Skipped++
			continue
		}

		for _, e := range exporters {
			e.Add(result.Entry)
		}
	}

	if err := forward.Close(); err != nil {
		return nil, err
	}
	if err := backward.Close(); err != nil {
		return nil, err
	}

	summary.Forward = statsOf(forward)
	summary.Backward = statsOf(backward)

	for _, e := range exporters {
		n, err := e.Export()
		if err != nil {
			fmt.Fprintf(p.stderr, "Warning: Failed to export %s: %v\n", e.Path(), err)
			summary.ExportErrs[e.Path()] = err
			continue
		}
		summary.Exported[e.Path()] = n
	}

	p.printSummary(summary)
	return summary, nil
}

// writeEntry adds both directions of a parsed entry. Both lines are checked
// against the encoding first so an entry is either written in full or not
// at all.
func (p *Processor) writeEntry(result dix.Result, forward, backward *dictionary.Writer) error {
	if !result.OK() {
		return result.Err
	}

	forwardLine := dictionary.FormatLine(result.Entry.Target, result.Entry.Source)
	backwardLine := dictionary.FormatLine(result.Entry.Source, result.Entry.Target)

	if err := forward.Check(forwardLine); err != nil {
		return err
	}
	if err := backward.Check(backwardLine); err != nil {
		return err
	}

	added, err := forward.Add(forwardLine)
	if err != nil {
		return err
	}
	if !added && p.flags.Debug {
		fmt.Fprintf(p.stdout, "  [DEBUG] Duplicate in %s: %q\n", filepath.Base(forward.Path()), forwardLine)
	}

	added, err = backward.Add(backwardLine)
	if err != nil {
		return err
	}
	if !added && p.flags.Debug {
		fmt.Fprintf(p.stdout, "  [DEBUG] Duplicate in %s: %q\n", filepath.Base(backward.Path()), backwardLine)
	}

	return nil
}

func (p *Processor) exporters(pair dix.LangPair) []export.Exporter {
	var exporters []export.Exporter

	if p.flags.Database != "" {
		exporters = append(exporters, export.NewSQLiteExporter(p.flags.Database, pair))
	}
	if p.flags.AnkiFile != "" {
		exporters = append(exporters, export.NewAnkiExporter(p.flags.AnkiFile))
	}

	return exporters
}

func (p *Processor) printSummary(s *Summary) {
	fmt.Fprintf(p.stdout, "\n=== Conversion Summary ===\n")
	fmt.Fprintf(p.stdout, "Entries found: %d\n", s.Entries)
	fmt.Fprintf(p.stdout, "%s: %d lines (%d duplicates dropped)\n", s.Forward.Path, s.Forward.Lines, s.Forward.Duplicates)
	fmt.Fprintf(p.stdout, "%s: %d lines (%d duplicates dropped)\n", s.Backward.Path, s.Backward.Lines, s.Backward.Duplicates)
	if s.Skipped > 0 {
		fmt.Fprintf(p.stdout, "Skipped entries: %d\n", s.Skipped)
	}
	for _, path := range slices.Sorted(maps.Keys(s.Exported)) {
		fmt.Fprintf(p.stdout, "Exported %d pairs to %s\n", s.Exported[path], path)
	}
	fmt.Fprintf(p.stdout, "==========================\n")
}

func statsOf(w *dictionary.Writer) DictionaryStats {
	return DictionaryStats{
		Path:       w.Path(),
		Lines:      w.Written(),
		Duplicates: w.Duplicates(),
	}
}

// readInput loads the whole dictionary, which must be UTF-8
func readInput(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read dictionary: %w", err)
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s is not valid UTF-8", path)
	}

	return string(content), nil
}
