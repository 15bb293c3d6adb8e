package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "note not found", err: apperrors.ErrNoteNotFound, wantStatus: http.StatusNotFound},
		{name: "vendor not found", err: apperrors.ErrVendorNotFound, wantStatus: http.StatusNotFound},
		{name: "tutor not found", err: apperrors.ErrTutorNotFound, wantStatus: http.StatusNotFound},
		{name: "slot not found", err: apperrors.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "session not found", err: apperrors.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "expired token", err: apperrors.ErrTokenExpired, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", err: apperrors.ErrTokenInvalid, wantStatus: http.StatusUnauthorized},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "conflict", err: apperrors.ErrConflict, wantStatus: http.StatusConflict},
		{name: "slot already booked", err: apperrors.ErrSlotAlreadyBooked, wantStatus: http.StatusConflict},
		{name: "unsafe content", err: apperrors.ErrUnsafeContent, wantStatus: http.StatusBadRequest},
		{name: "bad request", err: apperrors.ErrBadRequest, wantStatus: http.StatusBadRequest},
		{name: "invalid session status", err: apperrors.ErrInvalidSessionStatus, wantStatus: http.StatusBadRequest},
		{name: "file too large", err: apperrors.ErrFileTooLarge, wantStatus: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleAPIErrorWrappedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("custom message survives into conflict body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		HandleAPIError(c, apperrors.NewConflictError("user already has a tutor profile"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "user already has a tutor profile")
	})

	t.Run("internal details never leak", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		HandleAPIError(c, errors.New("pq: connection refused host=10.0.0.3"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	})
}
