package handler

import (
	"context"

	"github.com/google/uuid"

	"meeting-service/internal/domain"
	"meeting-service/internal/dto"
)

// MockMeetingService is a mock implementation of service.MeetingService
type MockMeetingService struct {
	CreateMeetingFunc     func(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error)
	GetMeetingFunc        func(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	GetMeetingPreviewFunc func(ctx context.Context, id uuid.UUID) (*dto.MeetingPreviewResponse, error)
}

func (m *MockMeetingService) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error) {
	if m.CreateMeetingFunc != nil {
		return m.CreateMeetingFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockMeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	if m.GetMeetingFunc != nil {
		return m.GetMeetingFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMeetingService) GetMeetingPreview(ctx context.Context, id uuid.UUID) (*dto.MeetingPreviewResponse, error) {
	if m.GetMeetingPreviewFunc != nil {
		return m.GetMeetingPreviewFunc(ctx, id)
	}
	return nil, nil
}

// MockParticipantService is a mock implementation of service.ParticipantService
type MockParticipantService struct {
	JoinMeetingFunc       func(ctx context.Context, meetingID uuid.UUID, req *dto.JoinMeetingRequest) (*dto.JoinMeetingResponse, error)
	VerifyTokenFunc       func(ctx context.Context, meetingID uuid.UUID, token string) (*dto.VerifyTokenResponse, error)
	LeaveMeetingFunc      func(ctx context.Context, meetingID uuid.UUID, token string) error
	UpdateLocationFunc    func(ctx context.Context, meetingID uuid.UUID, req *dto.UpdateLocationRequest) error
	GetParticipantsFunc   func(ctx context.Context, meetingID uuid.UUID) ([]dto.ParticipantResponse, error)
	CreateParticipantFunc func(ctx context.Context, meetingID uuid.UUID, latitude, longitude *float64) (*domain.Participant, error)
}

func (m *MockParticipantService) JoinMeeting(ctx context.Context, meetingID uuid.UUID, req *dto.JoinMeetingRequest) (*dto.JoinMeetingResponse, error) {
	if m.JoinMeetingFunc != nil {
		return m.JoinMeetingFunc(ctx, meetingID, req)
	}
	return nil, nil
}

func (m *MockParticipantService) VerifyToken(ctx context.Context, meetingID uuid.UUID, token string) (*dto.VerifyTokenResponse, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(ctx, meetingID, token)
	}
	return nil, nil
}

func (m *MockParticipantService) LeaveMeeting(ctx context.Context, meetingID uuid.UUID, token string) error {
	if m.LeaveMeetingFunc != nil {
		return m.LeaveMeetingFunc(ctx, meetingID, token)
	}
	return nil
}

func (m *MockParticipantService) UpdateLocation(ctx context.Context, meetingID uuid.UUID, req *dto.UpdateLocationRequest) error {
	if m.UpdateLocationFunc != nil {
		return m.UpdateLocationFunc(ctx, meetingID, req)
	}
	return nil
}

func (m *MockParticipantService) GetParticipants(ctx context.Context, meetingID uuid.UUID) ([]dto.ParticipantResponse, error) {
	if m.GetParticipantsFunc != nil {
		return m.GetParticipantsFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *MockParticipantService) CreateParticipant(ctx context.Context, meetingID uuid.UUID, latitude, longitude *float64) (*domain.Participant, error) {
	if m.CreateParticipantFunc != nil {
		return m.CreateParticipantFunc(ctx, meetingID, latitude, longitude)
	}
	return nil, nil
}
