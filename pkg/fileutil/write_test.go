package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xnattools/pkg/errdefs"
)

func TestWriteLines_VerbatimContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	lines := []string{"object_type,project_id,label\n", "session,proj01,subj042_sess01\n"}

	require.NoError(t, WriteLines(lines, path, "Xnatreport"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "object_type,project_id,label\nsession,proj01,subj042_sess01\n", string(content))
}

func TestWriteLines_AddsNoSeparators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, WriteLines([]string{"abc", "def"}, path, "Xnatreport"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(content), "lines without terminators stay unterminated")
}

func TestWriteLines_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.csv")

	err := WriteLines([]string{"row\n"}, path, "Xnatreport")
	require.Error(t, err)

	var userErr *errdefs.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "Xnatreport", userErr.Tool)
	assert.Contains(t, userErr.Msg, path)
	assert.Contains(t, err.Error(), "existing parent folder")
}

func TestWriteLines_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	require.NoError(t, WriteLines([]string{"fresh\n"}, path, "Xnatreport"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))
}

func TestWriteRecords_CSVEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	records := [][]string{
		{"project_id", "subject_label", "handedness"},
		{"proj01", "subj042", "right"},
		{"proj01", "subj, the 43rd", "left"},
	}

	require.NoError(t, WriteRecords(records, path, "Xnatreport"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"project_id,subject_label,handedness\nproj01,subj042,right\nproj01,\"subj, the 43rd\",left\n",
		string(content))
}

func TestWriteRecords_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.csv")

	err := WriteRecords([][]string{{"a"}}, path, "Xnatreport")
	require.Error(t, err)

	var userErr *errdefs.UserError
	assert.True(t, errors.As(err, &userErr))
}
