// Package mail delivers account e-mails over SMTP.
package mail

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/config"

	"github.com/sirupsen/logrus"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer returns an SMTP mailer, or a logging one when no host is configured.
func NewMailer(cfg config.MailConfig, log *logrus.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn("MAIL_HOST is empty, outgoing mail will only be logged")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg)
}
