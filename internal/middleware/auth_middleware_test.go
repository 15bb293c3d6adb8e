package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/pkg/auth"
)

func TestRoleRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "s"}), nil)

	newRouter := func(role models.RoleType, withRole bool) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if withRole {
				c.Set(ContextUserID, int64(1))
				c.Set(ContextUserRole, role)
			}
		})
		router.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	tests := []struct {
		name       string
		role       models.RoleType
		withRole   bool
		wantStatus int
	}{
		{name: "admin passes", role: models.RoleAdmin, withRole: true, wantStatus: http.StatusOK},
		{name: "student rejected", role: models.RoleStudent, withRole: true, wantStatus: http.StatusForbidden},
		{name: "vendor rejected", role: models.RoleVendor, withRole: true, wantStatus: http.StatusForbidden},
		{name: "unauthenticated rejected", withRole: false, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/admin", nil)
			newRouter(tt.role, tt.withRole).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestJWTAuthHeaderValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "s"}), nil)

	router := gin.New()
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUserContextAccessors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("round trip", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextUserID, int64(7))
		c.Set(ContextUserRole, models.RoleVendor)

		id, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, int64(7), id)

		role, ok := GetUserRole(c)
		assert.True(t, ok)
		assert.Equal(t, models.RoleVendor, role)
	})

	t.Run("absent keys", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := GetUserID(c)
		assert.False(t, ok)
		_, ok = GetUserRole(c)
		assert.False(t, ok)
	})
}
