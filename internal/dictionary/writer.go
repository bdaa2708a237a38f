package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/transform"
)

// Separator joins the two sides of a dictionary line
const Separator = " @ "

// FormatLine builds the dictionary line "left @ right\n".
func FormatLine(left, right string) string {
	return left + Separator + right + "\n"
}

// Options configures a Writer
type Options struct {
	Encoding *Encoding
	// Sorted buffers all lines and writes them in byte order on Close
	// instead of appending them as they arrive.
	Sorted bool
}

// Writer writes unique lines to a dictionary file. Lines are compared
// exactly; a line seen before is dropped.
type Writer struct {
	path     string
	file     *os.File
	buf      *bufio.Writer
	out      io.WriteCloser
	encoding *Encoding
	sorted   bool

	seen       map[string]struct{}
	pending    []string
	written    int
	duplicates int
}

// Create truncates or creates the file at path and returns a Writer for it.
func Create(path string, opts Options) (*Writer, error) {
	enc := opts.Encoding
	if enc == nil {
		var err error
		if enc, err = LookupEncoding(DefaultEncoding); err != nil {
			return nil, err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create dictionary file: %w", err)
	}

	buf := bufio.NewWriter(file)
	return &Writer{
		path:     path,
		file:     file,
		buf:      buf,
		out:      transform.NewWriter(buf, enc.newEncoder()),
		encoding: enc,
		sorted:   opts.Sorted,
		seen:     make(map[string]struct{}),
	}, nil
}

// Path returns the file path
func (w *Writer) Path() string {
	return w.path
}

// Written returns the number of unique lines accepted so far
func (w *Writer) Written() int {
	return w.written
}

// Duplicates returns the number of dropped duplicate lines
func (w *Writer) Duplicates() int {
	return w.duplicates
}

// Check reports whether line can be represented in the writer's encoding.
func (w *Writer) Check(line string) error {
	_, err := w.encoding.Encode(line)
	return err
}

// Add writes line unless an identical line was already added. It reports
// whether the line was new.
func (w *Writer) Add(line string) (bool, error) {
	if w.file == nil {
		return false, fmt.Errorf("dictionary %s is closed", w.path)
	}

	if _, ok := w.seen[line]; ok {
		w.duplicates++
		return false, nil
	}

	if err := w.Check(line); err != nil {
		return false, err
	}

	w.seen[line] = struct{}{}
	w.written++

	if w.sorted {
		w.pending = append(w.pending, line)
		return true, nil
	}

	if _, err := io.WriteString(w.out, line); err != nil {
		return false, fmt.Errorf("failed to write to %s: %w", w.path, err)
	}
	return true, nil
}

// Close flushes buffered lines and closes the file. Calling Close again is
// a no-op.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	file := w.file
	w.file = nil

	err := w.flush()
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", w.path, cerr)
	}
	return err
}

func (w *Writer) flush() error {
	if w.sorted {
		sort.Strings(w.pending)
		if _, err := io.WriteString(w.out, strings.Join(w.pending, "")); err != nil {
			return fmt.Errorf("failed to write to %s: %w", w.path, err)
		}
		w.pending = nil
	}

	if err := w.out.Close(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", w.path, err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, err)
	}
	return nil
}
