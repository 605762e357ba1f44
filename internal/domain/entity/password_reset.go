package entity

import "time"

// PasswordReset is an outstanding reset request, deleted once consumed
type PasswordReset struct {
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Token     string    `gorm:"type:varchar(64);primaryKey" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// Expired reports whether the request is older than ttl. A zero ttl never expires.
func (p *PasswordReset) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(p.CreatedAt) > ttl
}
