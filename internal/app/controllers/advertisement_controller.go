package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/middleware"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

// AdvertisementController handles advertisement delivery and the admin
// management endpoints.
type AdvertisementController struct {
	adService services.AdvertisementService
}

// NewAdvertisementController creates a new AdvertisementController.
func NewAdvertisementController(adService services.AdvertisementService) *AdvertisementController {
	return &AdvertisementController{adService: adService}
}

// ListActive godoc
// @Summary List active advertisements
// @Description Active, unexpired advertisements, optionally filtered by placement
// @Tags advertisements
// @Produce json
// @Param placement query string false "Placement: banner, sidebar or feed"
// @Success 200 {object} dto.APIResponse{data=[]dto.AdvertisementResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /advertisements [get]
func (c *AdvertisementController) ListActive(ctx *gin.Context) {
	placement, err := helpers.ParseOptionalEnum(ctx, "placement", "banner", "sidebar", "feed")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ads, err := c.adService.ListActive(ctx, placement)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ads})
}

// ListAll godoc
// @Summary List all advertisements
// @Description Admin listing including inactive and expired advertisements
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.APIResponse{data=dto.AdvertisementListResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/advertisements [get]
func (c *AdvertisementController) ListAll(ctx *gin.Context) {
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ads, err := c.adService.ListAll(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ads})
}

// Get godoc
// @Summary Get an advertisement by ID
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdvertisementResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/advertisements/{id} [get]
func (c *AdvertisementController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	ad, err := c.adService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ad})
}

// Create godoc
// @Summary Create an advertisement
// @Tags advertisements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdvertisementRequest true "Advertisement fields"
// @Success 201 {object} dto.APIResponse{data=dto.AdvertisementResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/advertisements [post]
func (c *AdvertisementController) Create(ctx *gin.Context) {
	var req dto.CreateAdvertisementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid advertisement fields: "+err.Error())
		return
	}

	ad, err := c.adService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: ad})
}

// Update godoc
// @Summary Update an advertisement
// @Tags advertisements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Param request body dto.UpdateAdvertisementRequest true "Advertisement fields"
// @Success 200 {object} dto.APIResponse{data=dto.AdvertisementResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/advertisements/{id} [put]
func (c *AdvertisementController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdvertisementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid advertisement fields: "+err.Error())
		return
	}

	ad, err := c.adService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ad})
}

// Delete godoc
// @Summary Delete an advertisement
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /admin/advertisements/{id} [delete]
func (c *AdvertisementController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Advertisement deleted"}})
}
