package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
	"github.com/simranbali-ace04/CampusHubX/shared/mailer"
)

// EmailNotifier emails students about application status changes. Delivery is
// best effort and fully decoupled from the state transition: failures are
// logged and never surfaced to the caller.
type EmailNotifier struct {
	mailer      *mailer.Mailer
	studentRepo repository.StudentRepository
	logger      *zerolog.Logger
}

// NewEmailNotifier creates a new EmailNotifier instance.
func NewEmailNotifier(
	mailer *mailer.Mailer,
	studentRepo repository.StudentRepository,
	logger *zerolog.Logger,
) *EmailNotifier {
	return &EmailNotifier{
		mailer:      mailer,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// ApplicationStatusChanged sends the notification in the background. The
// request context may be cancelled before delivery finishes, so the send runs
// detached with its own timeout.
func (n *EmailNotifier) ApplicationStatusChanged(ctx context.Context, application *model.Application) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)

	go func() {
		defer cancel()

		student, err := n.studentRepo.FindByID(sendCtx, application.StudentID.Hex())
		if err != nil {
			n.logger.Error().Err(err).
				Str("applicationId", application.ID.Hex()).
				Msg("failed to load applicant for status notification")
			return
		}

		htmlBody := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>The status of one of your applications changed to <b>%s</b>.</p>
			<p>Log in to CampusHubX to see the details.</p>
		`, student.FirstName, application.Status)

		subject := fmt.Sprintf("Your application is now %s", application.Status)
		if err := n.mailer.SendHTML([]string{student.Email}, subject, htmlBody); err != nil {
			n.logger.Error().Err(err).
				Str("applicationId", application.ID.Hex()).
				Msg("failed to send application status notification")
		}
	}()
}
