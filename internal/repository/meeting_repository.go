package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-service/internal/database"
	"meeting-service/internal/domain"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindExpired(ctx context.Context, before time.Time) ([]*domain.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// meetingRepositoryImpl is the GORM implementation of MeetingRepository
type meetingRepositoryImpl struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new instance of MeetingRepository. A nil db
// binds the repository to the shared connection, which may come up later via
// the async connect.
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

func (r *meetingRepositoryImpl) conn() *gorm.DB {
	if r.db != nil {
		return r.db
	}
	return database.GetDB()
}

func (r *meetingRepositoryImpl) Create(ctx context.Context, meeting *domain.Meeting) error {
	db := r.conn()
	if db == nil {
		return gorm.ErrInvalidDB
	}
	return db.WithContext(ctx).Create(meeting).Error
}

func (r *meetingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	db := r.conn()
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}
	var meeting domain.Meeting
	if err := db.WithContext(ctx).First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindExpired returns meetings whose scheduled time is before the given cutoff.
// Used by the retention cleanup job.
func (r *meetingRepositoryImpl) FindExpired(ctx context.Context, before time.Time) ([]*domain.Meeting, error) {
	db := r.conn()
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}
	var meetings []*domain.Meeting
	if err := db.WithContext(ctx).
		Where("date_time < ?", before).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// Delete removes a meeting; participants go with it via the FK cascade.
func (r *meetingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.conn()
	if db == nil {
		return gorm.ErrInvalidDB
	}
	return db.WithContext(ctx).Delete(&domain.Meeting{}, "id = ?", id).Error
}
