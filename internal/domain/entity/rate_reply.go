package entity

import "time"

// RateReply is a hospital's answer to a rating.
// HospitalID is copied from the parent rating when the reply is created.
type RateReply struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RateID     uint      `gorm:"not null;index" json:"rate_id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Rate Rating `gorm:"foreignKey:RateID" json:"rate,omitempty"`
}

func (RateReply) TableName() string {
	return "rate_replies"
}
