package fileutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"xnattools/pkg/errdefs"
)

// WriteLines writes lines to the file at path exactly as given, adding no
// separators: callers that want newline-terminated output include the
// terminators themselves. The parent directory must already exist,
// otherwise the result is a user error attributed to tool.
func WriteLines(lines []string, path, tool string) error {
	if err := checkParentDir(path, tool); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := file.WriteString(line); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// WriteRecords writes records to the file at path in CSV form, for tools
// that build rows rather than pre-formatted lines. Same parent-directory
// contract as WriteLines.
func WriteRecords(records [][]string, path, tool string) error {
	if err := checkParentDir(path, tool); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func checkParentDir(path, tool string) error {
	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		return errdefs.NewUserError(tool,
			"Path %s not found for report. Give an existing parent folder.", path)
	}
	return nil
}
