package entity

import "time"

// Model is gorm.Model without soft delete. Carts, menu items and offers carry
// unique natural keys, so deleted rows must really go away.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
