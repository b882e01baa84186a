package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// officeHandler serves the back-office pages: meetings, feedback and the audit log.
type officeHandler struct {
	meetingService  portssvc.MeetingSvcFacade
	feedbackService portssvc.FeedbackSvcFacade
	auditService    portssvc.AuditSvcFacade
}

func newOfficeHandler(services *portssvc.ServiceContainer) *officeHandler {
	return &officeHandler{
		meetingService:  services.Meeting,
		feedbackService: services.Feedback,
		auditService:    services.Audit,
	}
}

func registerOfficeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newOfficeHandler(services)
	staff := middleware.RequireRoles(middleware.StaffRoles...)

	meetings := rg.Group("/meetings")
	{
		meetings.GET("", h.listMeetings)
		meetings.POST("", h.createMeeting)
	}

	feedback := rg.Group("/feedback")
	{
		feedback.POST("", h.submitFeedback)
		feedback.GET("", staff, h.listFeedback)
		feedback.PUT("/:id/respond", staff, h.respondToFeedback)
	}
}

// registerLogRoutes registers the audit log routes. The caller gates the group to admins.
func registerLogRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := &officeHandler{auditService: auditService}

	logs := rg.Group("/logs")
	{
		logs.GET("", h.listLogs)
		logs.POST("", h.createLog)
		logs.DELETE("/:id", h.deleteLog)
	}
}

// listMeetings godoc
// @Summary List meetings
// @Description Staff see every meeting. Customers see the meetings they booked.
// @Tags meetings
// @Produce json
// @Success 200 {object} dto.ListMeetingsResponse
// @Security BearerAuth
// @Router /meetings [get]
func (h *officeHandler) listMeetings(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	meetings, err := h.meetingService.ListMeetings(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list meetings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMeetingsResponse(meetings))
}

// createMeeting godoc
// @Summary Schedule a meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body dto.CreateMeetingRequest true "Meeting details"
// @Success 201 {object} dto.MeetingResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /meetings [post]
func (h *officeHandler) createMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create meeting request")
		return
	}
	actor, _ := middleware.GetActorFromContext(c)
	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create meeting")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMeetingResponse(meeting))
}

// submitFeedback godoc
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /feedback [post]
func (h *officeHandler) submitFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "feedback request")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	feedback, err := h.feedbackService.SubmitFeedback(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to submit feedback")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(feedback))
}

// listFeedback godoc
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListFeedbackResponse
// @Security BearerAuth
// @Router /feedback [get]
func (h *officeHandler) listFeedback(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list feedback query")
		return
	}
	items, err := h.feedbackService.ListFeedback(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list feedback")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFeedbackResponse(items))
}

// respondToFeedback godoc
// @Summary Respond to feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param response body dto.RespondFeedbackRequest true "Response"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /feedback/{id}/respond [put]
func (h *officeHandler) respondToFeedback(c *gin.Context) {
	var req dto.RespondFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "feedback response")
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)
	feedback, err := h.feedbackService.RespondToFeedback(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to respond to feedback")
		return
	}
	c.JSON(http.StatusOK, dto.ToFeedbackResponse(feedback))
}

// listLogs godoc
// @Summary List audit log entries
// @Description Newest first.
// @Tags logs
// @Produce json
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListLogsResponse
// @Security BearerAuth
// @Router /logs [get]
func (h *officeHandler) listLogs(c *gin.Context) {
	var params dto.ListLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list logs query")
		return
	}
	logs, err := h.auditService.ListLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLogsResponse(logs))
}

// createLog godoc
// @Summary Add an audit log entry
// @Tags logs
// @Accept json
// @Produce json
// @Param log body dto.CreateLogRequest true "Entry"
// @Success 201 {object} dto.LogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [post]
func (h *officeHandler) createLog(c *gin.Context) {
	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create log request")
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.auditService.CreateLog(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create log entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLogResponse(entry))
}

// deleteLog godoc
// @Summary Delete an audit log entry
// @Tags logs
// @Param id path string true "Log ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs/{id} [delete]
func (h *officeHandler) deleteLog(c *gin.Context) {
	if err := h.auditService.DeleteLog(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete log entry")
		return
	}
	c.Status(http.StatusNoContent)
}
