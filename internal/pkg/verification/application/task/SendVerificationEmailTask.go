package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	mailport "github.com/zhahittya/encrypto-backend/internal/infrastructure/mail/port"
	queueport "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/port"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
)

// TypeVerificationEmail is the queue task type for verification code mail.
const TypeVerificationEmail = "mail:verification_code"

// QueueMail is the logical queue verification mail goes to.
const QueueMail = "mail"

// VerificationEmailPayload is the task payload carried through the queue.
type VerificationEmailPayload struct {
	Email   string               `json:"email"`
	Code    string               `json:"code"`
	Purpose verification.Purpose `json:"purpose"`
}

// NewVerificationEmailTask builds the queue task for a freshly issued code.
func NewVerificationEmailTask(email, code string, purpose verification.Purpose) (queueport.Task, error) {
	payload, err := json.Marshal(VerificationEmailPayload{Email: email, Code: code, Purpose: purpose})
	if err != nil {
		return queueport.Task{}, fmt.Errorf("marshaling verification email payload: %v", err)
	}
	return queueport.Task{Type: TypeVerificationEmail, Payload: payload}, nil
}

// NewVerificationEmailHandler returns the worker-side handler that sends the
// email. Subjects match the wording the mobile client expects.
func NewVerificationEmailHandler(mailer mailport.Mailer, logger zerolog.Logger) queueport.Handler {
	return func(ctx context.Context, t queueport.Task) error {
		var p VerificationEmailPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			return fmt.Errorf("unmarshaling verification email payload: %v", err)
		}

		subject := "Your Encrypto registration verification code"
		if p.Purpose == verification.PurposeForgot {
			subject = "Your Encrypto verification code for resetting the forgotten password"
		}
		body := fmt.Sprintf("Your verification code is: %s\n\nIt expires in %d minutes.",
			p.Code, int(verification.CodeTTL.Minutes()))

		if err := mailer.Send(ctx, p.Email, subject, body); err != nil {
			logger.Error().Err(err).Str("email", p.Email).Msg("sending verification email failed")
			return err
		}
		logger.Info().Str("email", p.Email).Str("purpose", string(p.Purpose)).Msg("verification email sent")
		return nil
	}
}
