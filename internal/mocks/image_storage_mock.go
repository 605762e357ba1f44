package mocks

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ImageStorage struct{ mock.Mock }

func (m *ImageStorage) SaveProfileImage(userID uuid.UUID, r io.Reader) (string, error) {
	args := m.Called(userID, r)
	return args.String(0), args.Error(1)
}

func (m *ImageStorage) Delete(key string) error {
	return m.Called(key).Error(0)
}

// URL is deterministic so tests need not stub it.
func (m *ImageStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	return "http://localhost/images/" + key
}

func (m *ImageStorage) Handler() http.Handler {
	return http.NotFoundHandler()
}
