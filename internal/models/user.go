package models

import "time"

// User represents a registered user. The numeric primary key and the
// password hash never leave the process; callers only ever see the
// generated user_id.
type User struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null" json:"role"`
}
