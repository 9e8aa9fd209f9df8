// Package mail delivers report emails over SMTP. It is the only place that
// knows about transports and MIME; callers hand it fully rendered content.
package mail

import (
	"io"
	"log/slog"

	gomail "gopkg.in/gomail.v2"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/internal/report"
)

type Mailer struct {
	dialer *gomail.Dialer
	sender string
	logger *slog.Logger
}

func NewMailer(cfg internal.MailConfig, logger *slog.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.SenderAddress(),
		logger: logger,
	}
}

// Send delivers one plain-text message with the given attachments. Failures
// come back as external errors; callers decide whether to retry.
func (m *Mailer) Send(to, subject, body string, attachments []report.Attachment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	for _, att := range attachments {
		data := att.Data
		msg.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.MimeType},
			}),
		)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("smtp delivery failed", "error", err, "to", to, "subject", subject)
		return internal.NewExternalError("failed to deliver email", internal.ErrCodeMailFailed, err)
	}

	m.logger.Info("email delivered", "to", to, "subject", subject, "attachments", len(attachments))
	return nil
}
