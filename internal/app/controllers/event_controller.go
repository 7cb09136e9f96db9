package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/services"
	"github.com/asrivastava/codecampus/internal/middleware"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
)

// EventController handles event endpoints
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// Create handles event creation
// @Summary Announce an event
// @Description Creates an event in PENDING state; accepts an optional cover image
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Event title"
// @Param description formData string true "Description"
// @Param eventType formData string true "Event type (QUIZ, DSA, HACKATHON, TECHFEST, OTHERS)"
// @Param date formData string true "Event date (RFC3339)"
// @Param venue formData string true "Venue"
// @Param image formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), user.ID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Event submitted for review", event))
}

// Get handles the assembled event detail with comments and participants
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx.Request.Context(), id, optionalViewer(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Event retrieved", event))
}

// ListApproved handles the public event listing
// @Summary List approved events
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse}
// @Router /events [get]
func (c *EventController) ListApproved(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	events, err := c.eventService.GetApprovedEvents(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Events retrieved", events))
}

// ListAll handles the moderation listing
// @Summary List all events (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /admin/events [get]
func (c *EventController) ListAll(ctx *gin.Context) {
	status, ok := statusFilter(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	events, err := c.eventService.GetAllEvents(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Events retrieved", events))
}

// Update handles event editing
// @Summary Edit an event
// @Description Author-only edit; a new image replaces the previous one
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param image formData file false "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	image, _ := ctx.FormFile("image")

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), user, id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Event updated", event))
}

// Delete handles event deletion
// @Summary Delete an event
// @Description Author or admin. Removes the event with its likes, comments and participant records.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Event deleted", nil))
}

// Review handles the moderation decision
// @Summary Review an event (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.ReviewRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /admin/events/{id}/review [post]
func (c *EventController) Review(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	status, ok := bindReviewRequest(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.ReviewEvent(ctx.Request.Context(), user, id, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Event reviewed", event))
}

// Join handles event participation
// @Summary Join an event
// @Description Registers the caller as a participant of an approved event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /events/{id}/join [post]
func (c *EventController) Join(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.JoinEvent(ctx.Request.Context(), user.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Joined event", nil))
}

// Leave handles leaving an event
// @Summary Leave an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /events/{id}/join [delete]
func (c *EventController) Leave(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.LeaveEvent(ctx.Request.Context(), user.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Left event", nil))
}

// SetWinner handles declaring the event winner
// @Summary Declare the event winner
// @Description Author or admin. The winner must be a participant.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.SetWinnerRequest true "Winner"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /events/{id}/winner [put]
func (c *EventController) SetWinner(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SetWinnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	winnerID, err := uuid.Parse(req.WinnerID)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.SetWinner(ctx.Request.Context(), user, id, winnerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Winner declared", event))
}
