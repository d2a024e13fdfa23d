package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents a scheduled meetup with a map location, guarded by a 4-digit PIN.
// PinHash stores the SHA-256 digest of the PIN; the plaintext PIN is never persisted
// and the hash is never serialized to clients.
type Meeting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:varchar(1000)" json:"description,omitempty"`
	DateTime    time.Time `gorm:"not null" json:"dateTime"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	Address     string    `gorm:"type:varchar(500);not null" json:"address"`
	PinHash     string    `gorm:"type:varchar(64);not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Participants []Participant `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
