package domain

// StudentRecord represents one graded student in the grading demo.
type StudentRecord struct {
	ID    int    `json:"id"    validate:"gt=0"`
	Name  string `json:"name"  validate:"required"`
	Score int    `json:"score" validate:"gte=0,lte=100"`
}

// EntityID returns the student's unique identifier.
func (s StudentRecord) EntityID() int { return s.ID }

// NewStudentRecord creates a StudentRecord and validates it.
func NewStudentRecord(id int, name string, score int) (StudentRecord, error) {
	r := StudentRecord{
		ID:    id,
		Name:  name,
		Score: score,
	}
	if err := r.Validate(); err != nil {
		return StudentRecord{}, err
	}
	return r, nil
}

// Validate checks if the StudentRecord has valid data.
func (s StudentRecord) Validate() error {
	return checkStruct(s)
}

// Grade maps the score to a letter grade.
func (s StudentRecord) Grade() string {
	switch {
	case s.Score >= 80:
		return "A"
	case s.Score >= 70:
		return "B"
	case s.Score >= 60:
		return "C"
	case s.Score >= 50:
		return "D"
	default:
		return "F"
	}
}
