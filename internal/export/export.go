package export

import "codeberg.org/snonux/hunapertium/internal/dix"

// Exporter collects pairs during a conversion and writes them out at the end
type Exporter interface {
	// Add records a pair; pairs seen before are ignored.
	Add(entry dix.Entry)
	// Export writes all recorded pairs and returns how many were written.
	Export() (int, error)
	// Path is the destination file
	Path() string
}

// pairSet keeps unique entries in first-seen order
type pairSet struct {
	seen    map[dix.Entry]struct{}
	entries []dix.Entry
}

func newPairSet() *pairSet {
	return &pairSet{seen: make(map[dix.Entry]struct{})}
}

func (s *pairSet) add(entry dix.Entry) {
	if _, ok := s.seen[entry]; ok {
		return
	}
	s.seen[entry] = struct{}{}
	s.entries = append(s.entries, entry)
}
