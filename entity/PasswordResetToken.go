package entity

import "time"

type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;index;not null"`
	Token     string    `gorm:"size:64;uniqueIndex;not null"`
	Code      string    `gorm:"size:6;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (t *PasswordResetToken) Expired(now time.Time) bool { return !now.Before(t.ExpiresAt) }
