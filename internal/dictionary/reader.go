package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Pair is one parsed dictionary line
type Pair struct {
	Left  string
	Right string
}

// String formats the pair without a trailing newline
func (p Pair) String() string {
	return p.Left + Separator + p.Right
}

// ParseLine splits a line on the first separator. The sides are kept
// verbatim apart from a trailing carriage return.
func ParseLine(line, sep string) (Pair, bool) {
	line = strings.TrimSuffix(line, "\r")
	left, right, ok := strings.Cut(line, sep)
	if !ok {
		return Pair{}, false
	}
	return Pair{Left: left, Right: right}, true
}

// ReadLines reads all non-blank lines from r. Windows line endings are
// accepted.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return lines, nil
}
