// Package cache holds the Redis-backed preview cache. The preview endpoint is
// polled by every pre-join screen, so responses are cached for a few seconds.
// Everything here is best-effort: a nil cache or an unreachable Redis always
// degrades to a plain DB read.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"meeting-service/internal/dto"
)

// DefaultPreviewTTL bounds how stale a cached preview can get between polls.
const DefaultPreviewTTL = 10 * time.Second

// PreviewCache caches meeting preview projections in Redis
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache. A zero ttl falls back to
// DefaultPreviewTTL.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl <= 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

func previewKey(meetingID uuid.UUID) string {
	return "meeting:preview:" + meetingID.String()
}

// Get returns the cached preview for the meeting, or ok=false on miss or any
// Redis/decode failure.
func (c *PreviewCache) Get(ctx context.Context, meetingID uuid.UUID) (*dto.MeetingPreviewResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, previewKey(meetingID)).Bytes()
	if err != nil {
		return nil, false
	}
	var preview dto.MeetingPreviewResponse
	if err := json.Unmarshal(data, &preview); err != nil {
		return nil, false
	}
	return &preview, true
}

// Set stores the preview under the cache TTL. Failures are dropped.
func (c *PreviewCache) Set(ctx context.Context, preview *dto.MeetingPreviewResponse) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(preview)
	if err != nil {
		return
	}
	c.client.Set(ctx, previewKey(preview.ID), data, c.ttl)
}

// Invalidate drops the cached preview so the active count refreshes on the
// next poll. Called after join and leave.
func (c *PreviewCache) Invalidate(ctx context.Context, meetingID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, previewKey(meetingID))
}
