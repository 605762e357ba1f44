package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants, seeded by the initial migration
const (
	RoleIDAdmin    = 1
	RoleIDHospital = 2
	RoleIDUser     = 3
)

// RoleNames constants
const (
	RoleAdmin    = "admin"
	RoleHospital = "hospital"
	RoleUser     = "user"
)

// RoleNameByID maps a role id to its name. Unknown ids yield "".
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDHospital:
		return RoleHospital
	case RoleIDUser:
		return RoleUser
	}
	return ""
}
