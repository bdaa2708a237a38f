package dix

import (
	"errors"
	"regexp"
)

var (
	ErrMissingSource = errors.New("no <l> section")
	ErrMissingTarget = errors.New("no <r> section")
	ErrEmptyText     = errors.New("empty text after normalization")
)

var (
	entryPattern  = regexp.MustCompile(`<p>(.*?)</p>`)
	sourcePattern = regexp.MustCompile(`<l>(.*?)</l>`)
	targetPattern = regexp.MustCompile(`<r>(.*?)</r>`)
)

// Entry is one normalized translation pair
type Entry struct {
	Source string
	Target string
}

// Result is the outcome of parsing a single <p> record. Err is nil when
// Entry holds a usable pair.
type Result struct {
	Raw   string
	Entry Entry
	Err   error
}

// OK reports whether the record produced a pair.
func (r Result) OK() bool {
	return r.Err == nil
}

// Extract finds every <p>...</p> record in text, in document order. A record
// must open and close on the same line. Each record is parsed on its own so
// a malformed one only affects its own Result.
func Extract(text string) []Result {
	matches := entryPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		entry, err := ParseEntry(m[1])
		results = append(results, Result{Raw: m[1], Entry: entry, Err: err})
	}

	return results
}

// ParseEntry takes the inside of a <p> record and returns the normalized
// contents of its first <l> and first <r> sections.
func ParseEntry(raw string) (Entry, error) {
	l := sourcePattern.FindStringSubmatch(raw)
	if l == nil {
		return Entry{}, ErrMissingSource
	}

	r := targetPattern.FindStringSubmatch(raw)
	if r == nil {
		return Entry{}, ErrMissingTarget
	}

	entry := Entry{Source: Normalize(l[1]), Target: Normalize(r[1])}
	if entry.Source == "" || entry.Target == "" {
		return Entry{}, ErrEmptyText
	}

	return entry, nil
}
