package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-service/internal/auth"
	"meeting-service/internal/cache"
	"meeting-service/internal/domain"
	"meeting-service/internal/dto"
	"meeting-service/internal/identity"
	"meeting-service/internal/metrics"
	"meeting-service/internal/repository"
	"meeting-service/internal/response"
)

// ParticipantService drives the participant session lifecycle: PIN-gated join,
// bearer-token verification, soft leave and location updates. A participant is
// absent (no row), active (is_active=true) or left (is_active=false); left
// rows are retained for history and idempotent token checks.
type ParticipantService interface {
	JoinMeeting(ctx context.Context, meetingID uuid.UUID, req *dto.JoinMeetingRequest) (*dto.JoinMeetingResponse, error)
	VerifyToken(ctx context.Context, meetingID uuid.UUID, token string) (*dto.VerifyTokenResponse, error)
	LeaveMeeting(ctx context.Context, meetingID uuid.UUID, token string) error
	UpdateLocation(ctx context.Context, meetingID uuid.UUID, req *dto.UpdateLocationRequest) error
	GetParticipants(ctx context.Context, meetingID uuid.UUID) ([]dto.ParticipantResponse, error)

	// CreateParticipant creates a participant without a PIN check. Used
	// internally by MeetingService when auto-joining the meeting creator.
	CreateParticipant(ctx context.Context, meetingID uuid.UUID, latitude, longitude *float64) (*domain.Participant, error)
}

// participantServiceImpl is the implementation of ParticipantService
type participantServiceImpl struct {
	participantRepo repository.ParticipantRepository
	meetingRepo     repository.MeetingRepository
	previewCache    *cache.PreviewCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(
	participantRepo repository.ParticipantRepository,
	meetingRepo repository.MeetingRepository,
	previewCache *cache.PreviewCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) ParticipantService {
	return &participantServiceImpl{
		participantRepo: participantRepo,
		meetingRepo:     meetingRepo,
		previewCache:    previewCache,
		metrics:         m,
		logger:          logger,
	}
}

// JoinMeeting verifies the PIN against the stored digest and creates a new
// active participant. The returned token is the participant's ID.
func (s *participantServiceImpl) JoinMeeting(ctx context.Context, meetingID uuid.UUID, req *dto.JoinMeetingRequest) (*dto.JoinMeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.countRejectedJoin("meeting_not_found")
			return nil, response.NewAppError(response.ErrCodeNotFound, "Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load meeting", err.Error())
	}

	if !auth.VerifyPin(req.Pin, meeting.PinHash) {
		s.countRejectedJoin("bad_pin")
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid PIN", "")
	}

	participant, err := s.CreateParticipant(ctx, meetingID, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list participants", err.Error())
	}

	if s.metrics != nil {
		s.metrics.JoinsTotal.Inc()
	}
	s.previewCache.Invalidate(ctx, meetingID)
	s.logger.Info("Participant joined",
		zap.String("meeting_id", meetingID.String()),
		zap.String("participant_id", participant.ID.String()),
		zap.String("display_name", participant.DisplayName),
	)

	return &dto.JoinMeetingResponse{
		Participant: dto.ToParticipantResponse(participant),
		Meeting:     dto.ToMeetingFullResponse(meeting, participants),
		Token:       participant.ID.String(),
	}, nil
}

// VerifyToken re-validates a bearer token for the meeting. An unparsable or
// unknown token, a token from another meeting, or a left participant all fail
// verification; a successful check bumps last_seen_at.
func (s *participantServiceImpl) VerifyToken(ctx context.Context, meetingID uuid.UUID, token string) (*dto.VerifyTokenResponse, error) {
	notVerified := response.NewAppError(response.ErrCodeUnauthorized, "Invalid or expired token", "")

	participantID, err := uuid.Parse(token)
	if err != nil {
		return nil, notVerified
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notVerified
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load participant", err.Error())
	}
	if participant.MeetingID != meetingID || !participant.IsActive {
		return nil, notVerified
	}

	now := time.Now().UTC()
	participant.LastSeenAt = &now
	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update participant", err.Error())
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notVerified
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load meeting", err.Error())
	}

	participants, err := s.participantRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list participants", err.Error())
	}

	return &dto.VerifyTokenResponse{
		Participant: dto.ToParticipantResponse(participant),
		Meeting:     dto.ToMeetingFullResponse(meeting, participants),
	}, nil
}

// LeaveMeeting flips the participant to inactive. Idempotent: leaving an
// already-left participant succeeds again without error. The row is never
// deleted.
func (s *participantServiceImpl) LeaveMeeting(ctx context.Context, meetingID uuid.UUID, token string) error {
	notFound := response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")

	participantID, err := uuid.Parse(token)
	if err != nil {
		return notFound
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load participant", err.Error())
	}
	if participant.MeetingID != meetingID {
		return notFound
	}

	participant.IsActive = false
	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update participant", err.Error())
	}

	if s.metrics != nil {
		s.metrics.LeavesTotal.Inc()
	}
	s.previewCache.Invalidate(ctx, meetingID)
	s.logger.Info("Participant left",
		zap.String("meeting_id", meetingID.String()),
		zap.String("participant_id", participantID.String()),
	)
	return nil
}

// UpdateLocation overwrites the participant's reported coordinates and bumps
// last_seen_at. Only active participants of this meeting may update.
func (s *participantServiceImpl) UpdateLocation(ctx context.Context, meetingID uuid.UUID, req *dto.UpdateLocationRequest) error {
	notFound := response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")

	participantID, err := uuid.Parse(req.Token)
	if err != nil {
		return notFound
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load participant", err.Error())
	}
	if participant.MeetingID != meetingID || !participant.IsActive {
		return notFound
	}

	now := time.Now().UTC()
	participant.Latitude = &req.Latitude
	participant.Longitude = &req.Longitude
	participant.LastSeenAt = &now
	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update participant", err.Error())
	}

	if s.metrics != nil {
		s.metrics.LocationUpdatesTotal.Inc()
	}
	return nil
}

// GetParticipants returns every participant of the meeting (active and
// inactive) ordered by join time; callers filter by isActive for display.
func (s *participantServiceImpl) GetParticipants(ctx context.Context, meetingID uuid.UUID) ([]dto.ParticipantResponse, error) {
	participants, err := s.participantRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list participants", err.Error())
	}
	return dto.ToParticipantResponses(participants), nil
}

// CreateParticipant assigns an identity against all existing participants of
// the meeting (active and inactive, to keep churn from recycling names) and
// persists the new active participant.
func (s *participantServiceImpl) CreateParticipant(ctx context.Context, meetingID uuid.UUID, latitude, longitude *float64) (*domain.Participant, error) {
	existing, err := s.participantRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list participants", err.Error())
	}

	usedNames := make(map[string]struct{}, len(existing))
	usedColors := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		usedNames[p.DisplayName] = struct{}{}
		usedColors[p.Color] = struct{}{}
	}

	name, color := identity.Assign(usedNames, usedColors)

	now := time.Now().UTC()
	participant := &domain.Participant{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		DisplayName: name,
		Color:       color,
		Latitude:    latitude,
		Longitude:   longitude,
		JoinedAt:    now,
		LastSeenAt:  &now,
		IsActive:    true,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create participant", err.Error())
	}
	return participant, nil
}

func (s *participantServiceImpl) countRejectedJoin(reason string) {
	if s.metrics != nil {
		s.metrics.JoinsRejectedTotal.WithLabelValues(reason).Inc()
	}
}
