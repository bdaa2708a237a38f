package dix

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrFilenameFormat is returned when a file name carries no language pair.
var ErrFilenameFormat = errors.New("file name does not match name.src-tgt.ext")

// FilenameError describes why a dictionary file name could not be parsed.
type FilenameError struct {
	Name   string
	Reason string
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("invalid dictionary file name %q: %s", e.Name, e.Reason)
}

func (e *FilenameError) Unwrap() error {
	return ErrFilenameFormat
}

// LangPair is the (source, target) language code pair of a dictionary
type LangPair struct {
	Source string
	Target string
}

// ParseLangPair derives the language pair from a path such as
// apertium-en-es.en-es.dix: the second dot-separated segment of the base
// name is split on "-" into source and target codes.
func ParseLangPair(path string) (LangPair, error) {
	name := filepath.Base(path)

	fields := strings.Split(name, ".")
	if len(fields) < 2 {
		return LangPair{}, &FilenameError{Name: name, Reason: "missing language pair segment"}
	}

	codes := strings.Split(fields[1], "-")
	if len(codes) < 2 {
		return LangPair{}, &FilenameError{Name: name, Reason: fmt.Sprintf("segment %q is not src-tgt", fields[1])}
	}

	pair := LangPair{Source: codes[0], Target: codes[1]}
	if pair.Source == "" || pair.Target == "" {
		return LangPair{}, &FilenameError{Name: name, Reason: fmt.Sprintf("empty language code in %q", fields[1])}
	}

	return pair, nil
}

// Reverse swaps source and target
func (p LangPair) Reverse() LangPair {
	return LangPair{Source: p.Target, Target: p.Source}
}

func (p LangPair) String() string {
	return p.Source + "-" + p.Target
}

// FileName returns the dictionary file name for this direction,
// e.g. "hunapertium-en-es.dic" for prefix "hunapertium".
func (p LangPair) FileName(prefix string) string {
	return fmt.Sprintf("%s-%s-%s.dic", prefix, p.Source, p.Target)
}
