// Package archive moves previously generated dictionaries aside before they
// are overwritten by a new conversion.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DirName is the archive directory created next to the archived files
const DirName = "archive"

// ArchiveFiles moves each existing file in paths into an "archive"
// directory next to it, appending a timestamp to the name. Missing files
// are skipped. It returns the new paths of the archived files.
func ArchiveFiles(paths []string) ([]string, error) {
	var archived []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return archived, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			return archived, fmt.Errorf("cannot archive directory: %s", path)
		}

		dest, err := archiveFile(path)
		if err != nil {
			return archived, err
		}
		archived = append(archived, dest)
	}

	return archived, nil
}

func archiveFile(path string) (string, error) {
	archiveDir := filepath.Join(filepath.Dir(path), DirName)

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := filepath.Base(path)
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, timestamp))

	// Two runs within the same second
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, timestamp))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return archivePath, nil
}
