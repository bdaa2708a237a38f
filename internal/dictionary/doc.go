// Package dictionary reads and writes hunalign dictionary files: plain text
// files with one "target @ source" pair per line. Writers deduplicate lines
// per file and encode them in a configurable character set.
package dictionary
