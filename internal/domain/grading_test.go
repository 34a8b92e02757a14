package domain

import (
	"errors"
	"testing"
)

func TestNewStudentRecord(t *testing.T) {
	t.Parallel()

	r, err := NewStudentRecord(101, "Alice Smith", 84)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if r.ID != 101 || r.Name != "Alice Smith" || r.Score != 84 {
		t.Errorf("Unexpected record %+v", r)
	}

	// Test invalid id
	_, err = NewStudentRecord(0, "Alice Smith", 84)
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}

	// Test empty name
	_, err = NewStudentRecord(101, "", 84)
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}

	// Test out-of-range scores
	for _, score := range []int{-1, 101} {
		_, err = NewStudentRecord(101, "Alice Smith", score)
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("Score %d: expected ErrScoreOutOfRange, got %v", score, err)
		}
	}
}

func TestStudentRecordGrade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score int
		grade string
	}{
		{100, "A"},
		{84, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{65, "C"},
		{60, "C"},
		{59, "D"},
		{50, "D"},
		{49, "F"},
		{0, "F"},
	}
	for _, c := range cases {
		r := StudentRecord{ID: 1, Name: "x", Score: c.score}
		if got := r.Grade(); got != c.grade {
			t.Errorf("Score %d: expected grade %s, got %s", c.score, c.grade, got)
		}
	}
}
