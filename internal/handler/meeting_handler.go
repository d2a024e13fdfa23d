package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"meeting-service/internal/dto"
	"meeting-service/internal/response"
	"meeting-service/internal/service"
)

type MeetingHandler struct {
	meetingService service.MeetingService
	logger         *zap.Logger
}

func NewMeetingHandler(meetingService service.MeetingService, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting godoc
// @Summary      Create a meeting
// @Description  Creates a meeting guarded by a 4-digit PIN and auto-joins the creator
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body CreateMeetingRequest true "Meeting details"
// @Success      201 {object} CreateMeetingResponse
// @Failure      400 {object} ErrorBody
// @Failure      500 {object} ErrorBody
// @Router       / [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.meetingService.CreateMeeting(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, "create_meeting", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetMeeting godoc
// @Summary      Get a meeting
// @Description  Returns the meeting details without its participant list
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID"
// @Success      200 {object} MeetingResponse
// @Failure      404 {object} ErrorBody
// @Router       /{meetingId} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	resp, err := h.meetingService.GetMeeting(c.Request.Context(), meetingID)
	if err != nil {
		handleServiceError(c, h.logger, "get_meeting", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMeetingPreview godoc
// @Summary      Preview a meeting
// @Description  Returns title, time and active participant count without requiring the PIN
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID"
// @Success      200 {object} MeetingPreviewResponse
// @Failure      404 {object} ErrorBody
// @Router       /{meetingId}/preview [get]
func (h *MeetingHandler) GetMeetingPreview(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	resp, err := h.meetingService.GetMeetingPreview(c.Request.Context(), meetingID)
	if err != nil {
		handleServiceError(c, h.logger, "get_meeting_preview", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseMeetingID reads the meetingId path parameter. A malformed ID cannot
// refer to any meeting, so it reports 404 like an unknown one.
func parseMeetingID(c *gin.Context) (uuid.UUID, bool) {
	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusNotFound, "Meeting not found")
		return uuid.Nil, false
	}
	return meetingID, true
}
