package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/middleware"
)

// parseIDParam parses a positive integer ID from the request path.
func parseIDParam(ctx *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+paramName+" parameter").WithField(paramName),
		})
		return 0, false
	}
	return id, true
}

// optionalQuery returns a pointer to the query value, nil when absent.
func optionalQuery(ctx *gin.Context, name string) *string {
	if v, ok := ctx.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}

// parseSortKey validates the sortBy query parameter against the keys a
// listing supports. Absent defaults to recent; unknown values are a 400.
func parseSortKey(ctx *gin.Context, allowed ...models.SortKey) (models.SortKey, bool) {
	v, ok := ctx.GetQuery("sortBy")
	if !ok || v == "" {
		return models.SortRecent, true
	}
	for _, key := range allowed {
		if models.SortKey(v) == key {
			return key, true
		}
	}
	ctx.JSON(http.StatusBadRequest, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid sortBy value").WithField("sortBy"),
	})
	return "", false
}

// requireUser reads the authenticated user from the context. Routes
// behind JWTAuth always have it; a miss means a wiring bug.
func requireUser(ctx *gin.Context) (int64, models.RoleType, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return 0, "", false
	}
	role, _ := middleware.GetUserRole(ctx)
	return userID, role, true
}

// badRequest writes a 400 with the given message.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, message),
	})
}
