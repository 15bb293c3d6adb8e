package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/middleware"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

// TutorController handles tutor profile and session operations.
type TutorController struct {
	tutorService services.TutorService
}

// NewTutorController creates a new TutorController.
func NewTutorController(tutorService services.TutorService) *TutorController {
	return &TutorController{tutorService: tutorService}
}

// ListTutors godoc
// @Summary List tutors
// @Tags tutors
// @Produce json
// @Param subject query string false "Filter by taught subject"
// @Param mode query string false "Filter by mode: online, in-person or hybrid"
// @Param maxHourlyRate query int false "Maximum hourly rate"
// @Param search query string false "Search in headline, bio and subjects"
// @Param sortBy query string false "Sort key: recent, rating, priceAsc or priceDesc"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse{data=dto.TutorListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors [get]
func (c *TutorController) ListTutors(ctx *gin.Context) {
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sortBy, ok := parseSortKey(ctx, models.SortRecent, models.SortRating, models.SortPriceAsc, models.SortPriceDesc)
	if !ok {
		return
	}
	mode, err := helpers.ParseOptionalEnum(ctx, "mode", "online", "in-person", "hybrid")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	maxRate, err := helpers.ParseOptionalInt(ctx, "maxHourlyRate")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := &dto.TutorFilter{
		Subject:       optionalQuery(ctx, "subject"),
		Mode:          mode,
		MaxHourlyRate: maxRate,
		Search:        optionalQuery(ctx, "search"),
		SortBy:        sortBy,
		Limit:         limit,
		Offset:        offset,
	}

	tutors, err := c.tutorService.ListTutors(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tutors})
}

// GetTutor godoc
// @Summary Get a tutor by ID
// @Description Get tutor detail including upcoming availability slots
// @Tags tutors
// @Produce json
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.TutorResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id} [get]
func (c *TutorController) GetTutor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tutor, err := c.tutorService.GetTutor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tutor})
}

// CreateTutor godoc
// @Summary Create a tutor profile
// @Description A user may hold one tutor profile
// @Tags tutors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTutorRequest true "Tutor fields"
// @Success 201 {object} dto.APIResponse{data=dto.TutorResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors [post]
func (c *TutorController) CreateTutor(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid tutor fields: "+err.Error())
		return
	}

	tutor, err := c.tutorService.CreateTutor(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: tutor})
}

// UpdateTutor godoc
// @Summary Update a tutor profile
// @Tags tutors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Param request body dto.UpdateTutorRequest true "Tutor fields"
// @Success 200 {object} dto.APIResponse{data=dto.TutorResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id} [put]
func (c *TutorController) UpdateTutor(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid tutor fields: "+err.Error())
		return
	}

	tutor, err := c.tutorService.UpdateTutor(ctx, userID, role, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tutor})
}

// DeleteTutor godoc
// @Summary Delete a tutor profile
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id} [delete]
func (c *TutorController) DeleteTutor(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.tutorService.DeleteTutor(ctx, userID, role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Tutor profile deleted"}})
}

// ListRatings godoc
// @Summary List tutor ratings
// @Tags tutors
// @Produce json
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.RatingListResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id}/ratings [get]
func (c *TutorController) ListRatings(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ratings, err := c.tutorService.ListRatings(ctx, id, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ratings})
}

// RateTutor godoc
// @Summary Rate a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Param request body dto.RateRequest true "Rating"
// @Success 200 {object} dto.APIResponse{data=dto.RatingSummary}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id}/ratings [post]
func (c *TutorController) RateTutor(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Rating must be an integer between 1 and 5")
		return
	}

	summary, err := c.tutorService.RateTutor(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summary})
}

// GetSaved godoc
// @Summary Check whether the tutor is saved
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Router /tutors/{id}/save [get]
func (c *TutorController) GetSaved(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	saved, err := c.tutorService.IsTutorSaved(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: saved}})
}

// SaveTutor godoc
// @Summary Save a tutor
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id}/save [post]
func (c *TutorController) SaveTutor(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.tutorService.SaveTutor(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: true}})
}

// UnsaveTutor godoc
// @Summary Remove a tutor from saved items
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Router /tutors/{id}/save [delete]
func (c *TutorController) UnsaveTutor(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.tutorService.UnsaveTutor(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: false}})
}

// ListSavedTutors godoc
// @Summary List the caller's saved tutors
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TutorListResponse}
// @Router /me/saved-tutors [get]
func (c *TutorController) ListSavedTutors(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	tutors, err := c.tutorService.ListSavedTutors(ctx, userID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tutors})
}

// AddSlot godoc
// @Summary Publish an availability slot
// @Tags tutors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Param request body dto.SlotRequest true "Slot window"
// @Success 201 {object} dto.APIResponse{data=dto.SlotResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id}/availability [post]
func (c *TutorController) AddSlot(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid slot fields: "+err.Error())
		return
	}

	slot, err := c.tutorService.AddSlot(ctx, userID, role, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: slot})
}

// DeleteSlot godoc
// @Summary Remove an availability slot
// @Description Booked slots cannot be removed
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Param slotId path int true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutors/{id}/availability/{slotId} [delete]
func (c *TutorController) DeleteSlot(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	slotID, ok := parseIDParam(ctx, "slotId")
	if !ok {
		return
	}

	if err := c.tutorService.DeleteSlot(ctx, userID, role, id, slotID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Slot removed"}})
}

// BookSession godoc
// @Summary Book a tutor session
// @Description Books an open availability slot; a booked slot returns 409
// @Tags tutor-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookSessionRequest true "Booking"
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutor-sessions [post]
func (c *TutorController) BookSession(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.BookSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid booking fields: "+err.Error())
		return
	}

	session, err := c.tutorService.BookSession(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: session})
}

// CancelSession godoc
// @Summary Cancel a tutor session
// @Description Cancelling an already cancelled session is a no-op
// @Tags tutor-sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /tutor-sessions/{id}/cancel [post]
func (c *TutorController) CancelSession(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.tutorService.CancelSession(ctx, userID, role, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// ListMySessions godoc
// @Summary List the caller's sessions
// @Description Sessions where the caller is the student or the tutor
// @Tags tutor-sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SessionResponse}
// @Router /me/sessions [get]
func (c *TutorController) ListMySessions(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	sessions, err := c.tutorService.ListMySessions(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sessions})
}
