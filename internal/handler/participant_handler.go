package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meeting-service/internal/dto"
	"meeting-service/internal/response"
	"meeting-service/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
	logger             *zap.Logger
}

func NewParticipantHandler(participantService service.ParticipantService, logger *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		logger:             logger,
	}
}

// JoinMeeting godoc
// @Summary      Join a meeting
// @Description  Verifies the PIN and creates a participant with a generated display name and color
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        meetingId path string true "Meeting ID"
// @Param        request body JoinMeetingRequest true "PIN and optional position"
// @Success      200 {object} JoinMeetingResponse
// @Failure      401 {object} ErrorBody
// @Failure      404 {object} ErrorBody
// @Router       /{meetingId}/join [post]
func (h *ParticipantHandler) JoinMeeting(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	var req dto.JoinMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.participantService.JoinMeeting(c.Request.Context(), meetingID, &req)
	if err != nil {
		handleServiceError(c, h.logger, "join_meeting", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyToken godoc
// @Summary      Verify a participant token
// @Description  Re-validates a stored bearer token; a valid check refreshes last-seen time
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        meetingId path string true "Meeting ID"
// @Param        request body VerifyTokenRequest true "Bearer token"
// @Success      200 {object} VerifyTokenResponse
// @Failure      401 {object} ErrorBody
// @Router       /{meetingId}/verify [post]
func (h *ParticipantHandler) VerifyToken(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	var req dto.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.participantService.VerifyToken(c.Request.Context(), meetingID, req.Token)
	if err != nil {
		handleServiceError(c, h.logger, "verify_token", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetParticipants godoc
// @Summary      List participants
// @Description  Returns all participants of the meeting, active and inactive, ordered by join time
// @Tags         participants
// @Produce      json
// @Param        meetingId path string true "Meeting ID"
// @Success      200 {array} ParticipantResponse
// @Router       /{meetingId}/participants [get]
func (h *ParticipantHandler) GetParticipants(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	resp, err := h.participantService.GetParticipants(c.Request.Context(), meetingID)
	if err != nil {
		handleServiceError(c, h.logger, "get_participants", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LeaveMeeting godoc
// @Summary      Leave a meeting
// @Description  Marks the participant inactive; the record is kept and leaving twice is not an error
// @Tags         participants
// @Accept       json
// @Param        meetingId path string true "Meeting ID"
// @Param        request body LeaveMeetingRequest true "Bearer token"
// @Success      204
// @Failure      404 {object} ErrorBody
// @Router       /{meetingId}/leave [post]
func (h *ParticipantHandler) LeaveMeeting(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	var req dto.LeaveMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.participantService.LeaveMeeting(c.Request.Context(), meetingID, req.Token); err != nil {
		handleServiceError(c, h.logger, "leave_meeting", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateLocation godoc
// @Summary      Update participant location
// @Description  Overwrites the participant's reported coordinates; only active participants may update
// @Tags         participants
// @Accept       json
// @Param        meetingId path string true "Meeting ID"
// @Param        request body UpdateLocationRequest true "Bearer token and coordinates"
// @Success      204
// @Failure      404 {object} ErrorBody
// @Router       /{meetingId}/participants/location [put]
func (h *ParticipantHandler) UpdateLocation(c *gin.Context) {
	meetingID, ok := parseMeetingID(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.participantService.UpdateLocation(c.Request.Context(), meetingID, &req); err != nil {
		handleServiceError(c, h.logger, "update_location", err)
		return
	}

	c.Status(http.StatusNoContent)
}
