package students

import (
	"context"
	"sort"
	"strings"
	"sync"

	"SSAAM-Backend/src/models"
)

// MemoryStore is a process-local Store used with STORE_DRIVER=memory and in
// tests.
type MemoryStore struct {
	mu       sync.RWMutex
	students []models.Student
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) FindPaginated(_ context.Context, f Filter, skip, limit int64) ([]models.Student, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Student, 0)
	for i := range m.students {
		if f.Matches(&m.students[i]) {
			matched = append(matched, m.students[i])
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedDate.After(matched[j].CreatedDate)
	})

	total := int64(len(matched))
	if skip < 0 {
		skip = 0
	}
	if skip >= total {
		return []models.Student{}, total, nil
	}
	end := total
	if limit > 0 && limit < total-skip {
		end = skip + limit
	}
	return matched[skip:end], total, nil
}

func (m *MemoryStore) CountAll(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.students)), nil
}

func (m *MemoryStore) CountByProgramAndYear(_ context.Context) ([]models.GroupCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type key struct{ program, year string }
	counts := map[key]int64{}
	var order []key
	for _, s := range m.students {
		k := key{s.Program, s.YearLevel}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	groups := make([]models.GroupCount, 0, len(order))
	for _, k := range order {
		groups = append(groups, models.GroupCount{Program: k.program, YearLevel: k.year, Count: counts[k]})
	}
	return groups, nil
}

func (m *MemoryStore) Create(_ context.Context, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(student.StudentID) >= 0 {
		return ErrDuplicateStudentID
	}
	m.students = append(m.students, *student)
	return nil
}

func (m *MemoryStore) FindByKey(_ context.Context, studentID string) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(studentID)
	if i < 0 {
		return nil, ErrStudentNotFound
	}
	s := m.students[i]
	return &s, nil
}

func (m *MemoryStore) UpdateByKey(_ context.Context, studentID string, set map[string]string, rebuildFullName bool) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(studentID)
	if i < 0 {
		return nil, ErrStudentNotFound
	}
	s := &m.students[i]
	for field, v := range set {
		switch field {
		case "rfid_code":
			s.RFIDCode = v
		case "full_name":
			s.FullName = v
		case "first_name":
			s.FirstName = v
		case "middle_name":
			s.MiddleName = v
		case "last_name":
			s.LastName = v
		case "suffix":
			s.Suffix = v
		case "year_level":
			s.YearLevel = v
		case "school_year":
			s.SchoolYear = v
		case "program":
			s.Program = v
		case "photo":
			s.Photo = v
		case "semester":
			s.Semester = v
		case "email":
			s.Email = v
		}
	}
	if rebuildFullName {
		s.FullName = FullName(s.FirstName, s.MiddleName, s.LastName, s.Suffix)
	}
	updated := *s
	return &updated, nil
}

func (m *MemoryStore) DeleteByKey(_ context.Context, studentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(studentID)
	if i < 0 {
		return ErrStudentNotFound
	}
	m.students = append(m.students[:i], m.students[i+1:]...)
	return nil
}

func (m *MemoryStore) FindOneMatching(_ context.Context, studentID, lastName string) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(studentID)
	if i < 0 || !strings.EqualFold(m.students[i].LastName, lastName) {
		return nil, nil
	}
	s := m.students[i]
	return &s, nil
}

func (m *MemoryStore) indexOf(studentID string) int {
	for i := range m.students {
		if m.students[i].StudentID == studentID {
			return i
		}
	}
	return -1
}
