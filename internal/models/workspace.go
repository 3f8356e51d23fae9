package models

import "time"

// Workspace is owned by the admin identified by AdminID. GuestIDs and
// TestIDs are soft references: nothing checks they point at live rows.
type Workspace struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	WorkspaceID string    `gorm:"uniqueIndex;not null" json:"workspace_id"`
	AdminID     string    `gorm:"not null;index" json:"admin_id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	GuestIDs    []string  `gorm:"serializer:json;type:text" json:"guest_ids"`
	TestIDs     []string  `gorm:"serializer:json;type:text" json:"test_ids"`
}
