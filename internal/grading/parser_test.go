package grading

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/persist"
)

func TestParseRecords(t *testing.T) {
	t.Parallel()

	input := "101, Alice Smith, 84\n102,Bruno Costa,65\n\n103, Chen Wei ,91\n"
	records, err := ParseRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3, "blank lines are skipped, not counted")

	assert.Equal(t, domain.StudentRecord{ID: 101, Name: "Alice Smith", Score: 84}, records[0])
	assert.Equal(t, "A", records[0].Grade())
	assert.Equal(t, "C", records[1].Grade())
	assert.Equal(t, "Chen Wei", records[2].Name, "fields are trimmed of surrounding whitespace")
}

func TestParseRecordsRejectsWrongFieldCount(t *testing.T) {
	t.Parallel()

	input := "101, Alice Smith, 84\n102, Bruno Costa\n103, Chen Wei, 91\n"
	records, err := ParseRecords(strings.NewReader(input))
	assert.Nil(t, records, "a bad line fails the whole read")

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestParseRecordsRejectsUnparsableInteger(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"bad id", "x1, Alice Smith, 84\n", 1},
		{"bad score", "101, Alice Smith, 84\n102, Bruno Costa, sixty\n", 2},
		{"score out of range", "101, Alice Smith, 184\n", 1},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRecords(strings.NewReader(c.input))
			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, c.line, malformed.Line)
		})
	}
}

func TestReadFileWrapsResourceAccessFailures(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, persist.ErrResourceAccess)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "students.txt")
	require.NoError(t, os.WriteFile(path, []byte("101, Alice Smith, 84\n"), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 101, records[0].ID)
}

func TestAverage(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Average(nil))

	records := []domain.StudentRecord{
		{ID: 1, Name: "a", Score: 80},
		{ID: 2, Name: "b", Score: 61},
	}
	assert.InDelta(t, 70.5, Average(records), 1e-9)
}

func TestMalformedRecordErrorNamesTheLine(t *testing.T) {
	t.Parallel()

	err := &MalformedRecordError{Line: 7, Reason: "expected 3 comma-separated fields, got 2"}
	assert.Contains(t, err.Error(), "line 7")
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}
