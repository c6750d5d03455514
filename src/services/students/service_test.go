package students

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"SSAAM-Backend/src/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) StudentRegistered(ctx context.Context, s *models.Student) error {
	return m.Called(ctx, s).Error(0)
}

func sampleStudent(id, first, last string) models.Student {
	return models.Student{
		StudentID:  id,
		FirstName:  first,
		LastName:   last,
		FullName:   FullName(first, "", last, ""),
		YearLevel:  "1st year",
		SchoolYear: "2025-2026",
		Program:    "BSIT",
		Semester:   "1st semester",
	}
}

func sampleInput(id string) models.StudentInput {
	return models.StudentInput{
		StudentID:  id,
		FirstName:  "Juan",
		MiddleName: "Santos",
		LastName:   "Dela Cruz",
		YearLevel:  "1st year",
		SchoolYear: "2025-2026",
		Program:    "BSIT",
		Semester:   "1st semester",
		Email:      "juan@example.com",
	}
}

func newTestService(notifier Notifier) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, notifier, DefaultRules(), zerolog.Nop()), store
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresAndNotifies", func(t *testing.T) {
		n := &mockNotifier{}
		n.On("StudentRegistered", mock.Anything, mock.AnythingOfType("*models.Student")).Return(nil)
		svc, store := newTestService(n)

		s, err := svc.Create(ctx, sampleInput("21-A-12345"))
		require.NoError(t, err)
		assert.Equal(t, "Juan Santos Dela Cruz", s.FullName)
		assert.Equal(t, models.RFIDNotAssigned, s.RFIDCode)
		assert.False(t, s.ID.IsZero())
		assert.False(t, s.CreatedDate.IsZero())

		stored, err := store.FindByKey(ctx, "21-A-12345")
		require.NoError(t, err)
		assert.Equal(t, s.FullName, stored.FullName)
		n.AssertNumberOfCalls(t, "StudentRegistered", 1)
	})

	t.Run("NotifierFailureDoesNotFailCreate", func(t *testing.T) {
		n := &mockNotifier{}
		n.On("StudentRegistered", mock.Anything, mock.Anything).Return(errors.New("queue down"))
		svc, _ := newTestService(n)

		_, err := svc.Create(ctx, sampleInput("21-A-12345"))
		assert.NoError(t, err)
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc, _ := newTestService(nil)
		_, err := svc.Create(ctx, sampleInput("21-A-12345"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, sampleInput("21-A-12345"))
		assert.ErrorIs(t, err, ErrDuplicateStudentID)
	})

	t.Run("ValidationOrder", func(t *testing.T) {
		svc, store := newTestService(nil)

		in := sampleInput("20-A-12345")
		in.FirstName = "R2D2"
		_, err := svc.Create(ctx, in)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Message, "Student ID must start with")

		in = sampleInput("21-A-12345")
		in.LastName = "Cruz3"
		_, err = svc.Create(ctx, in)
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Names must contain letters only", ve.Message)

		in = sampleInput("21-A-12345")
		in.Semester = ""
		_, err = svc.Create(ctx, in)
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "semester is required", ve.Message)

		n, _ := store.CountAll(ctx)
		assert.Zero(t, n)
	})
}

func TestListAndSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ids := []string{"21-A-00001", "22-A-00002", "23-A-00003"}
	for i, id := range ids {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		in := sampleInput(id)
		if i == 2 {
			in.LastName = "Reyes"
			in.Program = "BSCS"
		}
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	t.Run("NewestFirst", func(t *testing.T) {
		items, total, err := svc.List(ctx, models.PaginationParams{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, items, 2)
		assert.Equal(t, "23-A-00003", items[0].StudentID)
		assert.Equal(t, "22-A-00002", items[1].StudentID)
	})

	t.Run("SecondPage", func(t *testing.T) {
		items, _, err := svc.List(ctx, models.PaginationParams{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "21-A-00001", items[0].StudentID)
	})

	t.Run("BySurname", func(t *testing.T) {
		items, total, err := svc.Search(ctx, Filter{Search: "reY"}, models.DefaultPagination())
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "23-A-00003", items[0].StudentID)
	})

	t.Run("ByProgram", func(t *testing.T) {
		_, total, err := svc.Search(ctx, Filter{Program: "BSIT"}, models.DefaultPagination())
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("OversizedWindowIsClamped", func(t *testing.T) {
		items, total, err := svc.List(ctx, models.PaginationParams{Page: 1, Limit: 1_000_000_000})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, items, 3)

		items, _, err = svc.Search(ctx, Filter{}, models.PaginationParams{Page: math.MaxInt, Limit: math.MaxInt})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestMemoryStoreWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, id := range []string{"21-A-00001", "21-A-00002", "21-A-00003"} {
		s := sampleStudent(id, "Ana", "Reyes")
		require.NoError(t, store.Create(ctx, &s))
	}

	t.Run("HugeLimit", func(t *testing.T) {
		items, total, err := store.FindPaginated(ctx, Filter{}, 1, math.MaxInt64)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, items, 2)
	})

	t.Run("NegativeSkip", func(t *testing.T) {
		items, _, err := store.FindPaginated(ctx, Filter{}, -20, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("SkipPastEnd", func(t *testing.T) {
		items, total, err := store.FindPaginated(ctx, Filter{}, math.MaxInt64, math.MaxInt64)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Empty(t, items)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(nil)

	add := func(id, program, year string) {
		s := sampleStudent(id, "Ana", "Reyes")
		s.Program = program
		s.YearLevel = year
		require.NoError(t, store.Create(ctx, &s))
	}
	add("21-A-00001", "BSIT", "1st year")
	add("21-A-00002", "BSIT", "1st year")
	add("21-A-00003", "BSCS", "4th year")
	add("21-A-00004", "BSEE", "1st year")
	add("21-A-00005", "BSIS", "5th year")

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 5, stats.TotalStudents)
	assert.EqualValues(t, 2, stats.Stats["BSIT"]["1st year"])
	assert.EqualValues(t, 2, stats.Stats["BSIT"]["total"])
	assert.EqualValues(t, 1, stats.Stats["BSCS"]["4th year"])
	assert.EqualValues(t, 0, stats.Stats["BSIS"]["total"])
	assert.NotContains(t, stats.Stats, "BSEE")
	assert.Len(t, stats.Stats["BSIS"], 5)
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	str := func(s string) *string { return &s }

	setup := func(t *testing.T) *Service {
		svc, _ := newTestService(nil)
		_, err := svc.Create(ctx, sampleInput("21-A-12345"))
		require.NoError(t, err)
		return svc
	}

	t.Run("RecomputesFullNameFromStoredParts", func(t *testing.T) {
		svc := setup(t)
		updated, err := svc.Update(ctx, "21-A-12345", models.StudentUpdate{LastName: str("  Reyes ")})
		require.NoError(t, err)
		assert.Equal(t, "Reyes", updated.LastName)
		assert.Equal(t, "Juan Santos Reyes", updated.FullName)
	})

	t.Run("ConcurrentNamePartsBothLand", func(t *testing.T) {
		svc := setup(t)
		var wg sync.WaitGroup
		for _, upd := range []models.StudentUpdate{
			{FirstName: str("Ana")},
			{LastName: str("Reyes")},
		} {
			wg.Add(1)
			go func(upd models.StudentUpdate) {
				defer wg.Done()
				_, err := svc.Update(ctx, "21-A-12345", upd)
				assert.NoError(t, err)
			}(upd)
		}
		wg.Wait()

		current, err := svc.Update(ctx, "21-A-12345", models.StudentUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Ana Santos Reyes", current.FullName)
	})

	t.Run("NonNameFieldKeepsFullName", func(t *testing.T) {
		svc := setup(t)
		updated, err := svc.Update(ctx, "21-A-12345", models.StudentUpdate{YearLevel: str("2nd year")})
		require.NoError(t, err)
		assert.Equal(t, "2nd year", updated.YearLevel)
		assert.Equal(t, "Juan Santos Dela Cruz", updated.FullName)
	})

	t.Run("InvalidName", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Update(ctx, "21-A-12345", models.StudentUpdate{FirstName: str("J0hn")})
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Invalid first_name", ve.Message)
	})

	t.Run("EmptiedRequiredField", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Update(ctx, "21-A-12345", models.StudentUpdate{Program: str("")})
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "program is required", ve.Message)
	})

	t.Run("NoFieldsReturnsCurrent", func(t *testing.T) {
		svc := setup(t)
		current, err := svc.Update(ctx, "21-A-12345", models.StudentUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "21-A-12345", current.StudentID)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.Update(ctx, "21-A-99999", models.StudentUpdate{Semester: str("2nd semester")})
		assert.ErrorIs(t, err, ErrStudentNotFound)

		_, err = svc.Update(ctx, "21-A-99999", models.StudentUpdate{FirstName: str("Ana")})
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestDeleteAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	_, err := svc.Create(ctx, sampleInput("21-A-12345"))
	require.NoError(t, err)

	t.Run("LoginIgnoresCase", func(t *testing.T) {
		s, err := svc.Login(ctx, "21-A-12345", "dela cruz")
		require.NoError(t, err)
		assert.Equal(t, "21-A-12345", s.StudentID)
	})

	t.Run("LoginWrongSurname", func(t *testing.T) {
		_, err := svc.Login(ctx, "21-A-12345", "Dela")
		assert.ErrorIs(t, err, ErrInvalidLogin)
	})

	t.Run("LoginMissingFields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "Dela Cruz")
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Student ID and Last Name required", ve.Message)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "21-A-12345"))
		assert.ErrorIs(t, svc.Delete(ctx, "21-A-12345"), ErrStudentNotFound)

		_, err := svc.Login(ctx, "21-A-12345", "Dela Cruz")
		assert.ErrorIs(t, err, ErrInvalidLogin)
	})
}
