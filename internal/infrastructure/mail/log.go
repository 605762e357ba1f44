package mail

import (
	"context"

	"github.com/sirupsen/logrus"
)

type logMailer struct {
	log *logrus.Logger
}

func NewLogMailer(log *logrus.Logger) Mailer {
	return &logMailer{log: log}
}

func (m *logMailer) Send(ctx context.Context, msg Message) error {
	m.log.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Mail not sent, no SMTP host configured")
	return nil
}
