package models

import "time"

// Test belongs to a workspace and carries the list of subjects it covers.
type Test struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TestID      string    `gorm:"uniqueIndex;not null" json:"test_id"`
	AdminID     string    `gorm:"not null;index" json:"admin_id"`
	WorkspaceID string    `gorm:"not null;index" json:"workspace_id"`
	Subjects    []string  `gorm:"serializer:json;type:text" json:"subjects"`
}
