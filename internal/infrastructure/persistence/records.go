package persistence

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

const recordFileMode = 0o644

// readRecordLines returns the non-empty lines of a record file. A missing
// file is not an error: it reads as zero records.
func readRecordLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}
