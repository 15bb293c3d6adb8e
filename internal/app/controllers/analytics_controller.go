package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/middleware"
)

// AnalyticsController serves the precomputed marketplace analytics feeds.
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Trending godoc
// @Summary Trending notes
// @Description Notes from the last seven days ranked by combined views and downloads
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TrendingResponse}
// @Router /analytics/trending [get]
func (c *AnalyticsController) Trending(ctx *gin.Context) {
	resp, err := c.analyticsService.Trending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// TopNotes godoc
// @Summary Top rated notes
// @Description Highest rated notes with at least three ratings
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsNotesResponse}
// @Router /analytics/top-notes [get]
func (c *AnalyticsController) TopNotes(ctx *gin.Context) {
	resp, err := c.analyticsService.TopNotes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// RecentNotes godoc
// @Summary Recently uploaded notes
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsNotesResponse}
// @Router /analytics/recent [get]
func (c *AnalyticsController) RecentNotes(ctx *gin.Context) {
	resp, err := c.analyticsService.RecentNotes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Subjects godoc
// @Summary Note counts per subject
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SubjectsResponse}
// @Router /analytics/subjects [get]
func (c *AnalyticsController) Subjects(ctx *gin.Context) {
	resp, err := c.analyticsService.Subjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
