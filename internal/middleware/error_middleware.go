package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

// notFoundSentinels lists every error that maps to 404. Ownership
// failures deliberately land here too, so a caller cannot distinguish
// a foreign resource from a missing one.
var notFoundSentinels = []error{
	apperrors.ErrResourceNotFound,
	apperrors.ErrUserNotFound,
	apperrors.ErrNoteNotFound,
	apperrors.ErrNoteFileNotFound,
	apperrors.ErrCommentNotFound,
	apperrors.ErrVendorNotFound,
	apperrors.ErrAccommodationNotFound,
	apperrors.ErrTutorNotFound,
	apperrors.ErrSlotNotFound,
	apperrors.ErrSessionNotFound,
	apperrors.ErrAdvertisementNotFound,
}

// errorMessage prefers the wrapped custom message over the sentinel text.
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

// HandleAPIError translates service errors into the API error envelope.
func HandleAPIError(c *gin.Context, err error) {
	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			c.JSON(404, dto.APIResponse{
				Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, sentinel.Error())),
			})
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrSlotAlreadyBooked):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, "Resource conflict")),
		})
	case errors.Is(err, apperrors.ErrUnsafeContent):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnsafeContent, "Content failed safety check"),
		})
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidSessionStatus),
		errors.Is(err, apperrors.ErrFileTooLarge),
		errors.Is(err, apperrors.ErrUnsupportedFileType):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, errorMessage(err, err.Error())),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
