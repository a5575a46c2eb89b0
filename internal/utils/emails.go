package utils

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/Gazi-Farhana/summer-camp-server/internal/config"
	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
)

// Mailer sends transactional email over SMTP. A disabled mailer (no
// SMTP config) drops messages silently; notification is best-effort.
type Mailer struct {
	cfg config.Config
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendEmail sends a single HTML email.
func (m *Mailer) SendEmail(to string, subject string, body string) error {
	if !m.cfg.MailEnabled() {
		return nil
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.cfg.SMTPUsername)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)

	if err := dialer.DialAndSend(mailer); err != nil {
		logger.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}

	logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NotifyCourseFeedback emails the owning mentor when a moderator leaves
// feedback on a course.
func (m *Mailer) NotifyCourseFeedback(mentorEmail, courseTitle, feedback string) {
	body := fmt.Sprintf(`
	<div>
		<p>Hi,</p>
		<p>A moderator reviewed your course <strong>%s</strong> and left the following feedback:</p>
		<blockquote>%s</blockquote>
		<p>You can update the course and it will be reviewed again.</p>
	</div>`, courseTitle, feedback)

	go func() {
		_ = m.SendEmail(mentorEmail, "Course feedback from moderation", body)
	}()
}
