package progress

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\d{4}-[A-Z][a-z]{2}-\d{2}-\d{2}:\d{2}:\d{2} : .+$`)

func TestJournal_Log(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etl_project_log.txt")
	j := New(path)

	j.Log("Preliminaries complete. Initiating ETL process")
	j.Log("Process Complete.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Regexp(t, lineRe, line)
	}
	assert.True(t, strings.HasSuffix(lines[0], " : Preliminaries complete. Initiating ETL process"))
	assert.True(t, strings.HasSuffix(lines[1], " : Process Complete."))
}

func TestJournal_StampLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	j := New(path)
	j.now = func() time.Time {
		return time.Date(2023, time.September, 2, 18, 53, 26, 0, time.UTC)
	}

	j.Log("SQL Connection initiated.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2023-Sep-02-18:53:26 : SQL Connection initiated.\n", string(data))
}

func TestJournal_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	New(path).Log("first run")
	New(path).Log("second run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestJournal_WriteFailureDoesNotPanic(t *testing.T) {
	// Journal I/O is fire-and-forget; an unwritable path must not fail the run.
	j := New(filepath.Join(t.TempDir(), "missing", "dir", "log.txt"))
	assert.NotPanics(t, func() { j.Log("ignored") })
}
