// Package dix reads Apertium bilingual dictionaries (.dix files). It derives
// the language pair from the conventional file name and extracts the
// translation pairs stored as <p><l>source</l><r>target</r></p> records,
// stripping any inline markup from the words.
package dix
