package entity

import (
	"time"

	"github.com/google/uuid"
)

// Star bounds for a rating
const (
	MinStar = 1
	MaxStar = 5
)

// Rating is a user's star rating and written feedback on a hospital
type Rating struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Star       int       `gorm:"type:smallint;not null;check:star >= 1 AND star <= 5" json:"star"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital    `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Replies  []RateReply `gorm:"foreignKey:RateID" json:"replies,omitempty"`
}

func (Rating) TableName() string {
	return "rates"
}

// ValidStar reports whether star lies within [MinStar, MaxStar]
func ValidStar(star int) bool {
	return star >= MinStar && star <= MaxStar
}
