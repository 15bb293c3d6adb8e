package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyconnect/backend/internal/app/models/dto"
)

func TestRegisterValidators(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	router := gin.New()
	router.POST("/tutors", func(c *gin.Context) {
		var req dto.CreateTutorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/tutors", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("valid mode accepted", func(t *testing.T) {
		code := post(`{"headline":"Calculus tutoring","subjects":["calculus"],"mode":"online","hourlyRate":500}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("hybrid mode accepted", func(t *testing.T) {
		code := post(`{"headline":"Calculus tutoring","subjects":["calculus"],"mode":"hybrid","hourlyRate":500}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		code := post(`{"headline":"Calculus tutoring","subjects":["calculus"],"mode":"carrier-pigeon","hourlyRate":500}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
