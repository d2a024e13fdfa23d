package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meeting-service/internal/dto"
	"meeting-service/internal/response"
)

func newMeetingRouter(meetingSvc *MockMeetingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMeetingHandler(meetingSvc, zap.NewNop())

	r := gin.New()
	r.POST("/api/meetings", h.CreateMeeting)
	r.GET("/api/meetings/:meetingId", h.GetMeeting)
	r.GET("/api/meetings/:meetingId/preview", h.GetMeetingPreview)
	return r
}

func TestCreateMeetingHandler(t *testing.T) {
	meetingID := uuid.New()
	participantID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := &MockMeetingService{
			CreateMeetingFunc: func(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error) {
				assert.Equal(t, "Team meetup", req.Title)
				return &dto.CreateMeetingResponse{
					Meeting: dto.MeetingFullResponse{
						ID:           meetingID,
						Title:        req.Title,
						DateTime:     req.DateTime,
						Participants: []dto.ParticipantResponse{{ID: participantID, IsActive: true}},
					},
					Participant: dto.ParticipantResponse{ID: participantID, IsActive: true},
					Token:       participantID.String(),
				}, nil
			},
		}

		body, _ := json.Marshal(dto.CreateMeetingRequest{
			Title:    "Team meetup",
			DateTime: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
			Location: &dto.LocationDTO{Latitude: 55.7558, Longitude: 37.6173, Address: "Red Square, Moscow"},
			Pin:      "1234",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/meetings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.CreateMeetingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, participantID.String(), resp.Token)
		assert.Len(t, resp.Meeting.Participants, 1)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &MockMeetingService{
			CreateMeetingFunc: func(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error) {
				return nil, response.NewAppError(response.ErrCodeValidation, "PIN must be exactly 4 digits", "")
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/meetings", bytes.NewReader([]byte(`{"title":"x"}`)))
		req.Header.Set("Content-Type", "application/json")
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body response.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "PIN must be exactly 4 digits", body.Error)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/meetings", bytes.NewReader([]byte(`{not json`)))
		req.Header.Set("Content-Type", "application/json")
		newMeetingRouter(&MockMeetingService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		svc := &MockMeetingService{
			CreateMeetingFunc: func(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.CreateMeetingResponse, error) {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create meeting", "pq: connection refused")
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/meetings", bytes.NewReader([]byte(`{"title":"x"}`)))
		req.Header.Set("Content-Type", "application/json")
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body response.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestGetMeetingHandler(t *testing.T) {
	meetingID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := &MockMeetingService{
			GetMeetingFunc: func(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
				assert.Equal(t, meetingID, id)
				return &dto.MeetingResponse{ID: meetingID, Title: "Team meetup"}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/meetings/"+meetingID.String(), nil)
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockMeetingService{
			GetMeetingFunc: func(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Meeting not found", "")
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/meetings/"+uuid.New().String(), nil)
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id reported as not found", func(t *testing.T) {
		svc := &MockMeetingService{
			GetMeetingFunc: func(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
				t.Fatal("service should not be reached for a malformed ID")
				return nil, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/meetings/not-a-uuid", nil)
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body response.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Meeting not found", body.Error)
	})
}

func TestGetMeetingPreviewHandler(t *testing.T) {
	meetingID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := &MockMeetingService{
			GetMeetingPreviewFunc: func(ctx context.Context, id uuid.UUID) (*dto.MeetingPreviewResponse, error) {
				return &dto.MeetingPreviewResponse{ID: meetingID, Title: "Team meetup", ParticipantCount: 2}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/meetings/"+meetingID.String()+"/preview", nil)
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.MeetingPreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.ParticipantCount)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockMeetingService{
			GetMeetingPreviewFunc: func(ctx context.Context, id uuid.UUID) (*dto.MeetingPreviewResponse, error) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Meeting not found", "")
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/meetings/"+uuid.New().String()+"/preview", nil)
		newMeetingRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
