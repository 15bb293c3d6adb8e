package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/middleware"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

// AccommodationController handles accommodation listing operations.
type AccommodationController struct {
	accommodationService services.AccommodationService
}

// NewAccommodationController creates a new AccommodationController.
func NewAccommodationController(accommodationService services.AccommodationService) *AccommodationController {
	return &AccommodationController{accommodationService: accommodationService}
}

// ListAccommodations godoc
// @Summary List accommodations
// @Tags accommodations
// @Produce json
// @Param college query string false "Filter by college"
// @Param type query string false "Filter by type: hostel, pg, apartment or shared-room"
// @Param genderPreference query string false "Filter by gender preference"
// @Param minPrice query int false "Minimum monthly price (inclusive)"
// @Param maxPrice query int false "Maximum monthly price (inclusive)"
// @Param amenities query string false "Comma-separated amenities, all required"
// @Param search query string false "Search in name, description and address"
// @Param sortBy query string false "Sort key: recent, priceAsc or priceDesc"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse{data=dto.AccommodationListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations [get]
func (c *AccommodationController) ListAccommodations(ctx *gin.Context) {
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sortBy, ok := parseSortKey(ctx, "recent", "priceAsc", "priceDesc")
	if !ok {
		return
	}
	accType, err := helpers.ParseOptionalEnum(ctx, "type", "hostel", "pg", "apartment", "shared-room")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	gender, err := helpers.ParseOptionalEnum(ctx, "genderPreference", "any", "male", "female")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	minPrice, err := helpers.ParseOptionalInt(ctx, "minPrice")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	maxPrice, err := helpers.ParseOptionalInt(ctx, "maxPrice")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var amenities []string
	if raw := ctx.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				amenities = append(amenities, a)
			}
		}
	}

	filter := &dto.AccommodationFilter{
		College:          optionalQuery(ctx, "college"),
		Type:             accType,
		GenderPreference: gender,
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		Amenities:        amenities,
		Search:           optionalQuery(ctx, "search"),
		SortBy:           sortBy,
		Limit:            limit,
		Offset:           offset,
	}

	listings, err := c.accommodationService.ListAccommodations(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: listings})
}

// GetAccommodation godoc
// @Summary Get an accommodation by ID
// @Description Get accommodation detail including room categories
// @Tags accommodations
// @Produce json
// @Param id path int true "Accommodation ID"
// @Success 200 {object} dto.APIResponse{data=dto.AccommodationResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations/{id} [get]
func (c *AccommodationController) GetAccommodation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	listing, err := c.accommodationService.GetAccommodation(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: listing})
}

// CreateAccommodation godoc
// @Summary Create an accommodation listing
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAccommodationRequest true "Accommodation fields"
// @Success 201 {object} dto.APIResponse{data=dto.AccommodationResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations [post]
func (c *AccommodationController) CreateAccommodation(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccommodationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid accommodation fields: "+err.Error())
		return
	}

	listing, err := c.accommodationService.CreateAccommodation(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: listing})
}

// UpdateAccommodation godoc
// @Summary Update an accommodation listing
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Param request body dto.UpdateAccommodationRequest true "Accommodation fields"
// @Success 200 {object} dto.APIResponse{data=dto.AccommodationResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations/{id} [put]
func (c *AccommodationController) UpdateAccommodation(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccommodationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid accommodation fields: "+err.Error())
		return
	}

	listing, err := c.accommodationService.UpdateAccommodation(ctx, userID, role, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: listing})
}

// DeleteAccommodation godoc
// @Summary Delete an accommodation listing
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations/{id} [delete]
func (c *AccommodationController) DeleteAccommodation(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.accommodationService.DeleteAccommodation(ctx, userID, role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Accommodation deleted"}})
}

// GetSaved godoc
// @Summary Check whether the accommodation is saved
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Router /accommodations/{id}/save [get]
func (c *AccommodationController) GetSaved(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	saved, err := c.accommodationService.IsAccommodationSaved(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: saved}})
}

// SaveAccommodation godoc
// @Summary Save an accommodation
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations/{id}/save [post]
func (c *AccommodationController) SaveAccommodation(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.accommodationService.SaveAccommodation(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: true}})
}

// UnsaveAccommodation godoc
// @Summary Remove an accommodation from saved items
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Router /accommodations/{id}/save [delete]
func (c *AccommodationController) UnsaveAccommodation(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.accommodationService.UnsaveAccommodation(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: false}})
}

// ListSavedAccommodations godoc
// @Summary List the caller's saved accommodations
// @Tags accommodations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AccommodationListResponse}
// @Router /me/saved-accommodations [get]
func (c *AccommodationController) ListSavedAccommodations(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	listings, err := c.accommodationService.ListSavedAccommodations(ctx, userID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: listings})
}

// ScheduleVisit godoc
// @Summary Schedule an accommodation viewing
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Param request body dto.VisitRequest true "Visit details"
// @Success 201 {object} dto.APIResponse{data=models.AccommodationVisit}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations/{id}/visits [post]
func (c *AccommodationController) ScheduleVisit(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VisitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid visit fields: "+err.Error())
		return
	}

	visit, err := c.accommodationService.ScheduleVisit(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: visit})
}

// CreateBooking godoc
// @Summary Create an accommodation booking
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Accommodation ID"
// @Param request body dto.BookingRequest true "Booking details"
// @Success 201 {object} dto.APIResponse{data=models.AccommodationBooking}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /accommodations/{id}/bookings [post]
func (c *AccommodationController) CreateBooking(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid booking fields: "+err.Error())
		return
	}

	booking, err := c.accommodationService.CreateBooking(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: booking})
}
