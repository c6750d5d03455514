package jobs

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeStudentRegistered = "student:registered"

type StudentRegisteredPayload struct {
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Program   string `json:"program"`
	YearLevel string `json:"year_level"`
}

func (p *StudentRegisteredPayload) Normalize() {
	p.StudentID = strings.TrimSpace(p.StudentID)
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
}

func NewStudentRegisteredTask(p StudentRegisteredPayload) (*asynq.Task, error) {
	p.Normalize()
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeStudentRegistered, b), nil
}

// StudentRegisteredTaskID makes re-enqueues for the same student collapse.
func StudentRegisteredTaskID(studentID string) string {
	return "student-registered-" + strings.TrimSpace(studentID)
}
