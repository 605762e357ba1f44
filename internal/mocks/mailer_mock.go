package mocks

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/mail"

	"github.com/stretchr/testify/mock"
)

type Mailer struct{ mock.Mock }

func (m *Mailer) Send(ctx context.Context, msg mail.Message) error {
	return m.Called(ctx, msg).Error(0)
}
