// Package processor contains the conversion logic. It reads an Apertium
// dictionary, extracts its translation pairs, writes one deduplicated
// hunalign dictionary per translation direction and runs the optional
// exports. This package serves as the coordinator between the dix,
// dictionary, export and archive packages.
package processor
