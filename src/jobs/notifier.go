package jobs

import (
	"context"
	"errors"

	"SSAAM-Backend/src/models"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier queues a confirmation email for every registered student
// that gave an address.
type AsynqNotifier struct {
	client Enqueuer
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) StudentRegistered(ctx context.Context, s *models.Student) error {
	if s.Email == "" {
		return nil
	}

	task, err := NewStudentRegisteredTask(StudentRegisteredPayload{
		StudentID: s.StudentID,
		FullName:  s.FullName,
		Email:     s.Email,
		Program:   s.Program,
		YearLevel: s.YearLevel,
	})
	if err != nil {
		return err
	}

	_, err = n.client.EnqueueContext(ctx, task,
		asynq.TaskID(StudentRegisteredTaskID(s.StudentID)),
		asynq.MaxRetry(3),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}
