package students

import (
	"context"
	"errors"
	"strings"

	"SSAAM-Backend/src/models"
)

var (
	ErrDuplicateStudentID = errors.New("duplicate student_id")
	ErrStudentNotFound    = errors.New("student not found")
)

// Filter narrows a listing. Empty fields match everything.
type Filter struct {
	Search    string
	Program   string
	YearLevel string
}

// Store is the record access contract the service needs from a backing
// document store. Implementations sort listings by created_date, newest
// first, and enforce student_id uniqueness themselves.
type Store interface {
	FindPaginated(ctx context.Context, filter Filter, skip, limit int64) ([]models.Student, int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByProgramAndYear(ctx context.Context) ([]models.GroupCount, error)
	Create(ctx context.Context, student *models.Student) error
	FindByKey(ctx context.Context, studentID string) (*models.Student, error)
	// UpdateByKey applies set and, when rebuildFullName is true, recomputes
	// full_name from the stored name parts in the same write.
	UpdateByKey(ctx context.Context, studentID string, set map[string]string, rebuildFullName bool) (*models.Student, error)
	DeleteByKey(ctx context.Context, studentID string) error
	// FindOneMatching returns nil, nil when no student has this key and a
	// case-insensitive exact last_name match.
	FindOneMatching(ctx context.Context, studentID, lastName string) (*models.Student, error)
}

// Matches evaluates the filter in memory with the same semantics as
// BuildSearchFilter.
func (f Filter) Matches(s *models.Student) bool {
	if f.Program != "" && s.Program != f.Program {
		return false
	}
	if f.YearLevel != "" && s.YearLevel != f.YearLevel {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}
	for _, field := range []string{s.StudentID, s.FirstName, s.LastName, s.Email, s.RFIDCode} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
