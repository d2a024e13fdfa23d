package dto

import (
	"time"

	"github.com/google/uuid"

	"meeting-service/internal/domain"
)

// LocationDTO is a map point with its human-readable address
// @Description Geographic location of the meeting
type LocationDTO struct {
	Latitude  float64 `json:"latitude" example:"55.7558"`
	Longitude float64 `json:"longitude" example:"37.6173"`
	Address   string  `json:"address" example:"Red Square, Moscow"`
} // @name Location

// CreateMeetingRequest carries everything needed to create a meeting.
// Latitude/Longitude are the creator's own position and seed the creator's
// participant record, not the meeting location.
type CreateMeetingRequest struct {
	Title       string       `json:"title" example:"Team meetup"`
	Description string       `json:"description,omitempty" example:"Monthly sync over coffee"`
	DateTime    time.Time    `json:"dateTime" example:"2026-09-01T18:00:00Z"`
	Location    *LocationDTO `json:"location"`
	Pin         string       `json:"pin" example:"1234"`
	Latitude    *float64     `json:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty"`
} // @name CreateMeetingRequest

// MeetingResponse is the meeting projection without participants
type MeetingResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	DateTime    time.Time   `json:"dateTime"`
	Location    LocationDTO `json:"location"`
	CreatedAt   time.Time   `json:"createdAt"`
} // @name MeetingResponse

// MeetingFullResponse is the meeting projection including all of its
// participants (active and inactive), ordered by join time.
type MeetingFullResponse struct {
	ID           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	DateTime     time.Time             `json:"dateTime"`
	Location     LocationDTO           `json:"location"`
	CreatedAt    time.Time             `json:"createdAt"`
	Participants []ParticipantResponse `json:"participants"`
} // @name MeetingFullResponse

// CreateMeetingResponse returns the new meeting, the auto-joined creator and
// the creator's bearer token.
type CreateMeetingResponse struct {
	Meeting     MeetingFullResponse `json:"meeting"`
	Participant ParticipantResponse `json:"participant"`
	Token       string              `json:"token"`
} // @name CreateMeetingResponse

// MeetingPreviewResponse is the pre-join screen projection; available without a PIN
type MeetingPreviewResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	DateTime         time.Time `json:"dateTime"`
	ParticipantCount int       `json:"participantCount"`
} // @name MeetingPreviewResponse

// ToMeetingResponse converts a domain.Meeting to MeetingResponse
func ToMeetingResponse(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		DateTime:    m.DateTime,
		Location: LocationDTO{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Address:   m.Address,
		},
		CreatedAt: m.CreatedAt,
	}
}

// ToMeetingFullResponse converts a domain.Meeting plus its participants to
// MeetingFullResponse
func ToMeetingFullResponse(m *domain.Meeting, participants []*domain.Participant) MeetingFullResponse {
	return MeetingFullResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		DateTime:    m.DateTime,
		Location: LocationDTO{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Address:   m.Address,
		},
		CreatedAt:    m.CreatedAt,
		Participants: ToParticipantResponses(participants),
	}
}
