package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// HandleStudentRegistered sends the registration confirmation email.
func HandleStudentRegistered(sender MailSender, loginURL string, log zerolog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p StudentRegisteredPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		p.Normalize()
		if p.Email == "" {
			log.Warn().Str("student_id", p.StudentID).Msg("registered student has no email, skip")
			return nil
		}

		html, err := RenderRegisteredEmail(RegisteredEmailData{
			FullName:  p.FullName,
			StudentID: p.StudentID,
			Program:   p.Program,
			YearLevel: p.YearLevel,
			LoginLink: loginURL,
		})
		if err != nil {
			return fmt.Errorf("render email: %w", err)
		}

		if err := sender.Send(p.Email, "Student registration confirmed", html); err != nil {
			log.Error().Err(err).Str("student_id", p.StudentID).Msg("send registration email")
			return err
		}
		log.Info().Str("student_id", p.StudentID).Msg("registration email sent")
		return nil
	}
}

// RegisterHandlers binds every task type to its handler.
func RegisterHandlers(mux *asynq.ServeMux, sender MailSender, appBaseURL string, log zerolog.Logger) {
	mux.HandleFunc(TypeStudentRegistered, HandleStudentRegistered(sender, appBaseURL+"/login", log))
}
