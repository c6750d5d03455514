package students

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	studentIDPattern = regexp.MustCompile(`^[0-9]{2}-[A-Z]-[0-9]{5}$`)
	namePattern      = regexp.MustCompile(`^[\p{L}\s'-]+$`)
)

// ValidationError is returned for input the roster refuses to store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Rules holds the admin-tunable acceptance range for cohort years, the two
// leading digits of a student ID.
type Rules struct {
	CohortMin int
	CohortMax int
}

// DefaultRules accepts cohorts 21 through 25.
func DefaultRules() Rules {
	return Rules{CohortMin: 21, CohortMax: 25}
}

// CheckStudentID validates shape and cohort range of a student ID.
func (r Rules) CheckStudentID(id string) error {
	if !studentIDPattern.MatchString(id) {
		return invalid("Invalid student_id format. Use %02d-A-12345", r.CohortMin)
	}
	cohort, _ := strconv.Atoi(id[:2])
	if cohort < r.CohortMin || cohort > r.CohortMax {
		return invalid("Student ID must start with %02d to %02d (e.g., %02d-A-12345 to %02d-A-12345)",
			r.CohortMin, r.CohortMax, r.CohortMin, r.CohortMax)
	}
	return nil
}

// ValidName reports whether s contains only letters, spaces, apostrophes
// and hyphens.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// FullName joins the name parts with single spaces.
func FullName(first, middle, last, suffix string) string {
	return strings.Join(strings.Fields(first+" "+middle+" "+last+" "+suffix), " ")
}
