package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID     int       `gorm:"not null;index" json:"role_id"`
	HospitalID *uint     `gorm:"index" json:"hospital_id,omitempty"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	FirstName  string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Gender     string    `gorm:"type:varchar(255)" json:"gender,omitempty"`
	Phone      string    `gorm:"type:varchar(255)" json:"phone,omitempty"`
	Profile    string    `gorm:"type:varchar(255)" json:"profile,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role     Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// RoleName returns the user's role name derived from RoleID
func (u *User) RoleName() string {
	return RoleNameByID(u.RoleID)
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}
