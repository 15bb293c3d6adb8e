package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/middleware"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

// VendorController handles vendor listing operations.
type VendorController struct {
	vendorService services.VendorService
}

// NewVendorController creates a new VendorController.
func NewVendorController(vendorService services.VendorService) *VendorController {
	return &VendorController{vendorService: vendorService}
}

// ListVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search in name and description"
// @Param minRating query number false "Minimum average rating"
// @Param isActive query bool false "Filter by active flag"
// @Param sortBy query string false "Sort key: recent or rating"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse{data=dto.VendorListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors [get]
func (c *VendorController) ListVendors(ctx *gin.Context) {
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sortBy, ok := parseSortKey(ctx, "recent", "rating")
	if !ok {
		return
	}
	minRating, err := helpers.ParseOptionalFloat(ctx, "minRating")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	isActive, err := helpers.ParseOptionalBool(ctx, "isActive")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := &dto.VendorFilter{
		Category:  optionalQuery(ctx, "category"),
		Search:    optionalQuery(ctx, "search"),
		MinRating: minRating,
		IsActive:  isActive,
		SortBy:    sortBy,
		Limit:     limit,
		Offset:    offset,
	}

	vendors, err := c.vendorService.ListVendors(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: vendors})
}

// GetVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.APIResponse{data=dto.VendorResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors/{id} [get]
func (c *VendorController) GetVendor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	vendor, err := c.vendorService.GetVendor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: vendor})
}

// CreateVendor godoc
// @Summary Create a vendor listing
// @Description Requires the VENDOR or ADMIN role
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateVendorRequest true "Vendor fields"
// @Success 201 {object} dto.APIResponse{data=dto.VendorResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors [post]
func (c *VendorController) CreateVendor(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid vendor fields: "+err.Error())
		return
	}

	vendor, err := c.vendorService.CreateVendor(ctx, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: vendor})
}

// UpdateVendor godoc
// @Summary Update a vendor listing
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param request body dto.UpdateVendorRequest true "Vendor fields"
// @Success 200 {object} dto.APIResponse{data=dto.VendorResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors/{id} [put]
func (c *VendorController) UpdateVendor(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid vendor fields: "+err.Error())
		return
	}

	vendor, err := c.vendorService.UpdateVendor(ctx, userID, role, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: vendor})
}

// DeleteVendor godoc
// @Summary Deactivate a vendor listing
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors/{id} [delete]
func (c *VendorController) DeleteVendor(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.vendorService.DeleteVendor(ctx, userID, role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Vendor deactivated"}})
}

// ListRatings godoc
// @Summary List vendor ratings
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.APIResponse{data=dto.RatingListResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors/{id}/ratings [get]
func (c *VendorController) ListRatings(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ratings, err := c.vendorService.ListRatings(ctx, id, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ratings})
}

// RateVendor godoc
// @Summary Rate a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param request body dto.RateRequest true "Rating"
// @Success 200 {object} dto.APIResponse{data=dto.RatingSummary}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /vendors/{id}/ratings [post]
func (c *VendorController) RateVendor(ctx *gin.Context) {
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

	summary, err := c.vendorService.RateVendor(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summary})
}
