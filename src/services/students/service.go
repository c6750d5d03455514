package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"SSAAM-Backend/src/models"
	"SSAAM-Backend/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidLogin = errors.New("invalid student id or last name")

// Notifier is told about every successful registration.
type Notifier interface {
	StudentRegistered(ctx context.Context, student *models.Student) error
}

type Service struct {
	store    Store
	notifier Notifier
	rules    Rules
	validate *validator.Validate
	now      func() time.Time
	log      zerolog.Logger
}

// NewService wires the roster rules over store. notifier may be nil.
func NewService(store Store, notifier Notifier, rules Rules, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		rules:    rules,
		validate: utils.NewValidator(),
		now:      time.Now,
		log:      log.With().Str("component", "student_service").Logger(),
	}
}

// List returns one page of all students, newest first.
func (s *Service) List(ctx context.Context, params models.PaginationParams) ([]models.Student, int64, error) {
	params.Normalize()
	return s.store.FindPaginated(ctx, Filter{}, params.GetSkip(), int64(params.Limit))
}

// Search returns one page of students matching filter, newest first.
func (s *Service) Search(ctx context.Context, filter Filter, params models.PaginationParams) ([]models.Student, int64, error) {
	params.Normalize()
	return s.store.FindPaginated(ctx, filter, params.GetSkip(), int64(params.Limit))
}

// Stats counts students per program and year level. Buckets outside the
// BSCS/BSIS/BSIT × 1st..4th year grid are skipped but still contribute to
// TotalStudents.
func (s *Service) Stats(ctx context.Context) (*models.StudentStats, error) {
	groups, err := s.store.CountByProgramAndYear(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]map[string]int64, len(models.Programs))
	for _, p := range models.Programs {
		row := map[string]int64{"total": 0}
		for _, y := range models.YearLevels {
			row[y] = 0
		}
		stats[p] = row
	}

	for _, g := range groups {
		row, ok := stats[g.Program]
		if !ok {
			continue
		}
		if _, ok := row[g.YearLevel]; !ok || g.YearLevel == "total" {
			continue
		}
		row[g.YearLevel] += g.Count
		row["total"] += g.Count
	}

	return &models.StudentStats{Stats: stats, TotalStudents: total}, nil
}

// Create validates and stores a new student. Duplicate keys surface as
// ErrDuplicateStudentID, bad input as *ValidationError.
func (s *Service) Create(ctx context.Context, in models.StudentInput) (*models.Student, error) {
	if err := s.rules.CheckStudentID(in.StudentID); err != nil {
		return nil, err
	}
	if !ValidName(in.FirstName) || !ValidName(in.LastName) {
		return nil, invalid("Names must contain letters only")
	}
	if in.MiddleName != "" && !ValidName(in.MiddleName) {
		return nil, invalid("Middle name must contain letters only")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, &ValidationError{Message: utils.ValidationMessage(err)}
	}

	rfid := in.RFIDCode
	if rfid == "" {
		rfid = models.RFIDNotAssigned
	}

	student := &models.Student{
		ID:          primitive.NewObjectID(),
		StudentID:   in.StudentID,
		RFIDCode:    rfid,
		FullName:    FullName(in.FirstName, in.MiddleName, in.LastName, in.Suffix),
		FirstName:   in.FirstName,
		MiddleName:  in.MiddleName,
		LastName:    in.LastName,
		Suffix:      in.Suffix,
		YearLevel:   in.YearLevel,
		SchoolYear:  in.SchoolYear,
		Program:     in.Program,
		Photo:       in.Photo,
		Semester:    in.Semester,
		Email:       in.Email,
		CreatedDate: s.now().UTC(),
	}

	if err := s.store.Create(ctx, student); err != nil {
		if !errors.Is(err, ErrDuplicateStudentID) {
			s.log.Error().Err(err).Str("student_id", in.StudentID).Msg("failed to create student")
		}
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.StudentRegistered(ctx, student); err != nil {
			s.log.Warn().Err(err).Str("student_id", student.StudentID).Msg("registration notification not queued")
		}
	}
	return student, nil
}

// Update applies a partial update. Only supplied fields are validated, and
// the store recomputes full_name in the same write whenever a name part
// changes.
func (s *Service) Update(ctx context.Context, studentID string, upd models.StudentUpdate) (*models.Student, error) {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	upd.FirstName = trim(upd.FirstName)
	upd.MiddleName = trim(upd.MiddleName)
	upd.LastName = trim(upd.LastName)

	if upd.FirstName != nil && *upd.FirstName != "" && !ValidName(*upd.FirstName) {
		return nil, invalid("Invalid first_name")
	}
	if upd.LastName != nil && *upd.LastName != "" && !ValidName(*upd.LastName) {
		return nil, invalid("Invalid last_name")
	}
	if upd.MiddleName != nil && *upd.MiddleName != "" && !ValidName(*upd.MiddleName) {
		return nil, invalid("Middle name must contain letters only")
	}

	set := map[string]string{}
	required := []struct {
		name  string
		value *string
	}{
		{"first_name", upd.FirstName},
		{"last_name", upd.LastName},
		{"year_level", upd.YearLevel},
		{"school_year", upd.SchoolYear},
		{"program", upd.Program},
		{"semester", upd.Semester},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		if *f.value == "" {
			return nil, invalid("%s is required", f.name)
		}
		set[f.name] = *f.value
	}
	optional := []struct {
		name  string
		value *string
	}{
		{"middle_name", upd.MiddleName},
		{"suffix", upd.Suffix},
		{"rfid_code", upd.RFIDCode},
		{"photo", upd.Photo},
		{"email", upd.Email},
	}
	for _, f := range optional {
		if f.value != nil {
			set[f.name] = *f.value
		}
	}

	if len(set) == 0 {
		return s.store.FindByKey(ctx, studentID)
	}
	nameChanged := upd.FirstName != nil || upd.MiddleName != nil || upd.LastName != nil || upd.Suffix != nil

	updated, err := s.store.UpdateByKey(ctx, studentID, set, nameChanged)
	if err != nil && !errors.Is(err, ErrStudentNotFound) {
		s.log.Error().Err(err).Str("student_id", studentID).Msg("failed to update student")
	}
	return updated, err
}

// Delete removes a student by key.
func (s *Service) Delete(ctx context.Context, studentID string) error {
	return s.store.DeleteByKey(ctx, studentID)
}

// Login matches a student by key and current last name, ignoring case.
func (s *Service) Login(ctx context.Context, studentID, lastName string) (*models.Student, error) {
	if studentID == "" || lastName == "" {
		return nil, invalid("Student ID and Last Name required")
	}
	student, err := s.store.FindOneMatching(ctx, studentID, lastName)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrInvalidLogin
	}
	return student, nil
}
