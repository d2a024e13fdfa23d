package dto

import (
	"time"

	"github.com/google/uuid"

	"meeting-service/internal/domain"
)

// JoinMeetingRequest carries the PIN and the joiner's optional position
type JoinMeetingRequest struct {
	Pin       string   `json:"pin" example:"1234"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
} // @name JoinMeetingRequest

// JoinMeetingResponse returns the new participant, the full meeting and the
// participant's bearer token.
type JoinMeetingResponse struct {
	Participant ParticipantResponse `json:"participant"`
	Meeting     MeetingFullResponse `json:"meeting"`
	Token       string              `json:"token"`
} // @name JoinMeetingResponse

// VerifyTokenRequest carries the bearer token to re-validate
type VerifyTokenRequest struct {
	Token string `json:"token"`
} // @name VerifyTokenRequest

// VerifyTokenResponse returns the participant behind a still-valid token
type VerifyTokenResponse struct {
	Participant ParticipantResponse `json:"participant"`
	Meeting     MeetingFullResponse `json:"meeting"`
} // @name VerifyTokenResponse

// LeaveMeetingRequest carries the bearer token of the leaving participant
type LeaveMeetingRequest struct {
	Token string `json:"token"`
} // @name LeaveMeetingRequest

// UpdateLocationRequest overwrites the participant's reported position
type UpdateLocationRequest struct {
	Token     string  `json:"token"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
} // @name UpdateLocationRequest

// ParticipantResponse is the participant projection exposed to clients
type ParticipantResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName" example:"Алый Тигр"`
	Color       string    `json:"color" example:"#FF6B6B"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
	IsActive    bool      `json:"isActive"`
} // @name ParticipantResponse

// ToParticipantResponse converts a domain.Participant to ParticipantResponse
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Color:       p.Color,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		JoinedAt:    p.JoinedAt,
		IsActive:    p.IsActive,
	}
}

// ToParticipantResponses converts []*domain.Participant to []ParticipantResponse
func ToParticipantResponses(participants []*domain.Participant) []ParticipantResponse {
	responses := make([]ParticipantResponse, len(participants))
	for i, p := range participants {
		responses[i] = ToParticipantResponse(p)
	}
	return responses
}
