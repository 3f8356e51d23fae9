package models

import "time"

// Invitation statuses. Status starts at pending and only changes through
// update; arbitrary strings are accepted there on purpose.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// Invitation invites a guest to an item (a workspace or a test, tagged by
// Type). ItemID, AdminID and GuestID are soft references.
type Invitation struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	InvitationID string    `gorm:"uniqueIndex;not null" json:"invitation_id"`
	ItemID       string    `gorm:"not null;index" json:"item_id"`
	AdminID      string    `gorm:"not null;index" json:"admin_id"`
	GuestID      string    `gorm:"not null;index" json:"guest_id"`
	Type         string    `gorm:"not null" json:"type"`
	Status       string    `gorm:"not null" json:"status"`
}
