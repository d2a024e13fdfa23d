package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant represents a person who joined a meeting. The participant ID doubles
// as the bearer token handed to the client: whoever holds the ID acts as this
// participant. Leaving flips IsActive to false; the row is kept for history and
// idempotent token checks.
type Participant struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MeetingID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_participants_meeting_id" json:"meetingId"`
	DisplayName string     `gorm:"type:varchar(100);not null" json:"displayName"`
	Color       string     `gorm:"type:varchar(7);not null" json:"color"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	JoinedAt    time.Time  `gorm:"not null" json:"joinedAt"`
	LastSeenAt  *time.Time `json:"lastSeenAt,omitempty"`
	IsActive    bool       `gorm:"not null" json:"isActive"`

	Meeting Meeting `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
