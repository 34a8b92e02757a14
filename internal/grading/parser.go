// Package grading parses the student-grading demo's line-oriented input.
// Each non-blank line is "id,name,score"; a single bad line fails the whole
// read with an error naming the line number, and no partial result escapes.
package grading

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/persist"
)

// ErrMalformedRecord is returned when an input line has the wrong field
// count or an unparsable field. It is always carried by a
// MalformedRecordError naming the offending line.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes one rejected input line.
type MalformedRecordError struct {
	Line   int    // 1-based line number in the input
	Reason string // what was wrong with the line
}

// Error implements the error interface for MalformedRecordError.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, ErrMalformedRecord)
}

// Unwrap returns ErrMalformedRecord to support errors.Is.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

const recordFields = 3

// ParseRecords reads student records from r, one per non-blank line.
// Fields are comma-separated and trimmed of surrounding whitespace, so
// "101, Alice Smith, 84" parses to id 101, name "Alice Smith", score 84.
// The first bad line aborts the read.
func ParseRecords(r io.Reader) ([]domain.StudentRecord, error) {
	var records []domain.StudentRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != recordFields {
			return nil, &MalformedRecordError{
				Line:   lineNo,
				Reason: fmt.Sprintf("expected %d comma-separated fields, got %d", recordFields, len(fields)),
			}
		}

		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, &MalformedRecordError{
				Line:   lineNo,
				Reason: fmt.Sprintf("id %q is not an integer", strings.TrimSpace(fields[0])),
			}
		}
		score, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, &MalformedRecordError{
				Line:   lineNo,
				Reason: fmt.Sprintf("score %q is not an integer", strings.TrimSpace(fields[2])),
			}
		}

		record, err := domain.NewStudentRecord(id, strings.TrimSpace(fields[1]), score)
		if err != nil {
			return nil, &MalformedRecordError{
				Line:   lineNo,
				Reason: err.Error(),
			}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading input: %v", persist.ErrResourceAccess, err)
	}

	return records, nil
}

// ReadFile parses the records in the file at path.
// A missing or unreadable file wraps persist.ErrResourceAccess; unlike the
// inventory flat file, an absent grading input is an error.
func ReadFile(path string) ([]domain.StudentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", persist.ErrResourceAccess, path, err)
	}
	defer f.Close()

	return ParseRecords(f)
}

// Average returns the mean score across records, or 0 for an empty set.
func Average(records []domain.StudentRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, r := range records {
		total += r.Score
	}
	return float64(total) / float64(len(records))
}
