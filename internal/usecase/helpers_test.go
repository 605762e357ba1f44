package usecase

import (
	"io"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func uintPtr(v uint) *uint { return &v }

func newAdmin() *entity.User {
	return &entity.User{ID: uuid.New(), RoleID: entity.RoleIDAdmin, Email: "admin@example.com"}
}

func newHospitalUser(hospitalID uint) *entity.User {
	return &entity.User{ID: uuid.New(), RoleID: entity.RoleIDHospital, HospitalID: uintPtr(hospitalID), Email: "staff@example.com"}
}

func newPlainUser() *entity.User {
	return &entity.User{ID: uuid.New(), RoleID: entity.RoleIDUser, Email: "jane@example.com", FirstName: "Jane"}
}
