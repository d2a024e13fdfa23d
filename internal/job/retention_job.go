package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"meeting-service/internal/repository"
)

// RetentionJob removes meetings whose scheduled time is further in the past
// than the retention window. Participants of a deleted meeting go with it via
// the cascade delete. Meetings are ephemeral; nothing references them once
// everyone has stopped polling.
type RetentionJob struct {
	meetingRepo repository.MeetingRepository
	retention   time.Duration
	logger      *zap.Logger
}

// NewRetentionJob creates a new RetentionJob instance
func NewRetentionJob(meetingRepo repository.MeetingRepository, retention time.Duration, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{
		meetingRepo: meetingRepo,
		retention:   retention,
		logger:      logger,
	}
}

// Run executes one cleanup pass
func (j *RetentionJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	expired, err := j.meetingRepo.FindExpired(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to find expired meetings", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		return
	}

	j.logger.Info("Removing expired meetings",
		zap.Int("count", len(expired)),
		zap.Time("cutoff", cutoff),
	)

	deleted := 0
	for _, meeting := range expired {
		if err := j.meetingRepo.Delete(ctx, meeting.ID); err != nil {
			j.logger.Error("Failed to delete expired meeting",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err),
			)
			continue
		}
		deleted++
	}

	j.logger.Info("Retention cleanup finished",
		zap.Int("deleted", deleted),
		zap.Int("failed", len(expired)-deleted),
	)
}
