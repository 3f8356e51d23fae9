package models

import "time"

// Color is the display color assigned to a guest within a workspace.
type Color struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ColorID     string    `gorm:"uniqueIndex;not null" json:"color_id"`
	WorkspaceID string    `gorm:"not null;index" json:"workspace_id"`
	GuestID     string    `gorm:"not null;index" json:"guest_id"`
	Hex         string    `gorm:"not null" json:"hex"`
}
