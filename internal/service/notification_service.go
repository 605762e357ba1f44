package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/mail"
)

// NotificationService turns account events into e-mails.
type NotificationService interface {
	SendWelcome(ctx context.Context, user *entity.User) error
	SendPasswordReset(ctx context.Context, user *entity.User, token string) error
}

type notificationService struct {
	mailer   mail.Mailer
	resetURL string
}

func NewNotificationService(mailer mail.Mailer, resetURL string) NotificationService {
	return &notificationService{
		mailer:   mailer,
		resetURL: resetURL,
	}
}

func (s *notificationService) SendWelcome(ctx context.Context, user *entity.User) error {
	body, err := mail.RenderWelcome(mail.WelcomeData{FirstName: user.FirstName, Email: user.Email})
	if err != nil {
		return fmt.Errorf("render welcome mail: %w", err)
	}
	return s.mailer.Send(ctx, mail.Message{
		To:      user.Email,
		Subject: "Welcome to Carefinder",
		HTML:    body,
	})
}

func (s *notificationService) SendPasswordReset(ctx context.Context, user *entity.User, token string) error {
	body, err := mail.RenderReset(mail.ResetData{
		FirstName: user.FirstName,
		Token:     token,
		Link:      s.resetLink(token),
	})
	if err != nil {
		return fmt.Errorf("render reset mail: %w", err)
	}
	return s.mailer.Send(ctx, mail.Message{
		To:      user.Email,
		Subject: "Reset your Carefinder password",
		HTML:    body,
	})
}

func (s *notificationService) resetLink(token string) string {
	u, err := url.Parse(s.resetURL)
	if err != nil {
		return s.resetURL + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
