package dictionary

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// BitextorSeparator separates the two sides in bitextor dictionaries
const BitextorSeparator = "\t"

// Reverse swaps the sides of every "a @ b" line read from r and returns
// the swapped lines sorted. Lines without a separator are reported to warn
// and skipped.
func Reverse(r io.Reader, warn io.Writer) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	reversed := make([]string, 0, len(lines))
	for _, line := range lines {
		pair, ok := ParseLine(line, Separator)
		if !ok {
			fmt.Fprintf(warn, "Skipping line without %q: %s\n", Separator, line)
			continue
		}
		reversed = append(reversed, Pair{Left: pair.Right, Right: pair.Left}.String())
	}

	sort.Strings(reversed)
	return reversed, nil
}

// FromBitextor converts tab separated bitextor lines to dictionary lines
// and returns them sorted.
func FromBitextor(r io.Reader) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	converted := make([]string, 0, len(lines))
	for _, line := range lines {
		converted = append(converted, strings.ReplaceAll(line, BitextorSeparator, Separator))
	}

	sort.Strings(converted)
	return converted, nil
}

// WriteLines writes each line followed by a newline
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
