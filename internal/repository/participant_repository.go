package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-service/internal/database"
	"meeting-service/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error)
	Update(ctx context.Context, participant *domain.Participant) error
	CountActive(ctx context.Context, meetingID uuid.UUID) (int64, error)
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository. A
// nil db binds the repository to the shared connection, which may come up
// later via the async connect.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

func (r *participantRepositoryImpl) conn() *gorm.DB {
	if r.db != nil {
		return r.db
	}
	return database.GetDB()
}

func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	db := r.conn()
	if db == nil {
		return gorm.ErrInvalidDB
	}
	return db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	db := r.conn()
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}
	var participant domain.Participant
	if err := db.WithContext(ctx).First(&participant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByMeetingID returns every participant of the meeting, active and
// inactive, ordered by join time ascending.
func (r *participantRepositoryImpl) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error) {
	db := r.conn()
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}
	var participants []*domain.Participant
	if err := db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("joined_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepositoryImpl) Update(ctx context.Context, participant *domain.Participant) error {
	db := r.conn()
	if db == nil {
		return gorm.ErrInvalidDB
	}
	return db.WithContext(ctx).Save(participant).Error
}

func (r *participantRepositoryImpl) CountActive(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	db := r.conn()
	if db == nil {
		return 0, gorm.ErrInvalidDB
	}
	var count int64
	err := db.WithContext(ctx).Model(&domain.Participant{}).
		Where("meeting_id = ? AND is_active = ?", meetingID, true).
		Count(&count).Error
	return count, err
}
