package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"meeting-service/internal/domain"
	"meeting-service/internal/dto"
)

// MockMeetingRepository is a mock implementation of MeetingRepository
type MockMeetingRepository struct {
	CreateFunc      func(ctx context.Context, meeting *domain.Meeting) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindExpiredFunc func(ctx context.Context, before time.Time) ([]*domain.Meeting, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMeetingRepository) FindExpired(ctx context.Context, before time.Time) ([]*domain.Meeting, error) {
	if m.FindExpiredFunc != nil {
		return m.FindExpiredFunc(ctx, before)
	}
	return nil, nil
}

func (m *MockMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc          func(ctx context.Context, participant *domain.Participant) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindByMeetingIDFunc func(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error)
	UpdateFunc          func(ctx context.Context, participant *domain.Participant) error
	CountActiveFunc     func(ctx context.Context, meetingID uuid.UUID) (int64, error)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error) {
	if m.FindByMeetingIDFunc != nil {
		return m.FindByMeetingIDFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) Update(ctx context.Context, participant *domain.Participant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) CountActive(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, meetingID)
	}
	return 0, nil
}

// MockParticipantService is a mock implementation of ParticipantService
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
