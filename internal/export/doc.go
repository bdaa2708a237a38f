// Package export writes the translation pairs of a converted dictionary to
// additional formats: an SQLite database and an Anki importable CSV file.
package export
