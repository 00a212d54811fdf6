package fileutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"xnattools/pkg/errdefs"
)

// ReadLines reads the text file at path and returns its non-empty lines,
// trimmed and in file order. An empty path means the user did not request
// the file: the result is (nil, nil), distinct from the empty slice an
// existing but empty file yields. A path that does not exist is a user
// error attributed to tool.
func ReadLines(path, tool string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errdefs.NewUserError(tool, "file %s does not exist.", path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}
