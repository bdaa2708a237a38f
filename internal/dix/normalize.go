package dix

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<.+?>`)

// Normalize replaces every inline tag with a space, trims the result and
// collapses runs of whitespace into a single space.
func Normalize(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
