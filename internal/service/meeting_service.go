package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-service/internal/auth"
	"meeting-service/internal/cache"
	"meeting-service/internal/domain"
	"meeting-service/internal/dto"
	"meeting-service/internal/metrics"
	"meeting-service/internal/repository"
	"meeting-service/internal/response"
)

// MeetingService defines the interface for meeting business logic
type MeetingService interface {
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	GetMeetingPreview(ctx context.Context, id uuid.UUID) (*dto.MeetingPreviewResponse, error)
}

// meetingServiceImpl is the implementation of MeetingService
type meetingServiceImpl struct {
	meetingRepo     repository.MeetingRepository
	participantRepo repository.ParticipantRepository
	participantSvc  ParticipantService
	previewCache    *cache.PreviewCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewMeetingService creates a new instance of MeetingService
func NewMeetingService(
	meetingRepo repository.MeetingRepository,
	participantRepo repository.ParticipantRepository,
	participantSvc ParticipantService,
	previewCache *cache.PreviewCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) MeetingService {
	return &meetingServiceImpl{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		participantSvc:  participantSvc,
		previewCache:    previewCache,
		metrics:         m,
		logger:          logger,
	}
}

// CreateMeeting validates the request, persists the meeting with a hashed PIN
// and auto-joins the creator as the first participant. Validation failures
// leave no partial writes behind.
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error) {
	if err := validateCreateMeeting(req); err != nil {
		return nil, err
	}

	meeting := &domain.Meeting{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DateTime:    req.DateTime,
		Latitude:    req.Location.Latitude,
		Longitude:   req.Location.Longitude,
		Address:     req.Location.Address,
		PinHash:     auth.HashPin(req.Pin),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create meeting", err.Error())
	}

	// The creator joins their own meeting without a PIN check.
	creator, err := s.participantSvc.CreateParticipant(ctx, meeting.ID, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.MeetingsCreatedTotal.Inc()
	}
	s.logger.Info("Meeting created",
		zap.String("meeting_id", meeting.ID.String()),
		zap.Time("date_time", meeting.DateTime),
	)

	return &dto.CreateMeetingResponse{
		Meeting:     dto.ToMeetingFullResponse(meeting, []*domain.Participant{creator}),
		Participant: dto.ToParticipantResponse(creator),
		Token:       creator.ID.String(),
	}, nil
}

// GetMeeting returns the meeting projection without participants
func (s *meetingServiceImpl) GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load meeting", err.Error())
	}
	resp := dto.ToMeetingResponse(meeting)
	return &resp, nil
}

// GetMeetingPreview returns the pre-join projection (no PIN required): title,
// time and the count of currently-active participants. Served from the Redis
// cache when fresh.
func (s *meetingServiceImpl) GetMeetingPreview(ctx context.Context, id uuid.UUID) (*dto.MeetingPreviewResponse, error) {
	if preview, ok := s.previewCache.Get(ctx, id); ok {
		if s.metrics != nil {
			s.metrics.PreviewCacheHits.Inc()
		}
		return preview, nil
	}
	if s.metrics != nil {
		s.metrics.PreviewCacheMisses.Inc()
	}

	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load meeting", err.Error())
	}

	activeCount, err := s.participantRepo.CountActive(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count participants", err.Error())
	}

	preview := &dto.MeetingPreviewResponse{
		ID:               meeting.ID,
		Title:            meeting.Title,
		DateTime:         meeting.DateTime,
		ParticipantCount: int(activeCount),
	}
	s.previewCache.Set(ctx, preview)
	return preview, nil
}

func validateCreateMeeting(req *dto.CreateMeetingRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return response.NewAppError(response.ErrCodeValidation, "Meeting title is required", "")
	}
	if req.DateTime.IsZero() {
		return response.NewAppError(response.ErrCodeValidation, "Meeting date and time are required", "")
	}
	if req.Location == nil || strings.TrimSpace(req.Location.Address) == "" {
		return response.NewAppError(response.ErrCodeValidation, "Meeting location is required", "")
	}
	if !auth.ValidPin(req.Pin) {
		return response.NewAppError(response.ErrCodeValidation, "PIN must be exactly 4 digits", "")
	}
	return nil
}
