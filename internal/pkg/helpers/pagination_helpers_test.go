package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "defaults", query: "", wantLimit: 20, wantOffset: 0},
		{name: "explicit values", query: "limit=5&offset=10", wantLimit: 5, wantOffset: 10},
		{name: "limit capped at max", query: "limit=500", wantLimit: 100, wantOffset: 0},
		{name: "zero limit rejected", query: "limit=0", wantErr: true},
		{name: "negative limit rejected", query: "limit=-1", wantErr: true},
		{name: "non numeric limit rejected", query: "limit=abc", wantErr: true},
		{name: "negative offset rejected", query: "offset=-5", wantErr: true},
		{name: "non numeric offset rejected", query: "offset=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.query)
			limit, offset, err := ParseListParams(c)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseOptionalInt(t *testing.T) {
	t.Run("absent returns nil", func(t *testing.T) {
		c := newTestContext(t, "")
		v, err := ParseOptionalInt(c, "maxPrice")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("present returns value", func(t *testing.T) {
		c := newTestContext(t, "maxPrice=1500")
		v, err := ParseOptionalInt(c, "maxPrice")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, int64(1500), *v)
	})

	t.Run("malformed rejected", func(t *testing.T) {
		c := newTestContext(t, "maxPrice=cheap")
		_, err := ParseOptionalInt(c, "maxPrice")
		require.Error(t, err)
	})
}

func TestParseOptionalEnum(t *testing.T) {
	t.Run("absent returns nil", func(t *testing.T) {
		c := newTestContext(t, "")
		v, err := ParseOptionalEnum(c, "mode", "online", "in-person")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("allowed value accepted", func(t *testing.T) {
		c := newTestContext(t, "mode=online")
		v, err := ParseOptionalEnum(c, "mode", "online", "in-person")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "online", *v)
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		c := newTestContext(t, "mode=telepathy")
		_, err := ParseOptionalEnum(c, "mode", "online", "in-person")
		require.Error(t, err)
	})
}

func TestParseOptionalBool(t *testing.T) {
	t.Run("absent returns nil", func(t *testing.T) {
		c := newTestContext(t, "")
		v, err := ParseOptionalBool(c, "isActive")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("true parsed", func(t *testing.T) {
		c := newTestContext(t, "isActive=true")
		v, err := ParseOptionalBool(c, "isActive")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.True(t, *v)
	})

	t.Run("malformed rejected", func(t *testing.T) {
		c := newTestContext(t, "isActive=maybe")
		_, err := ParseOptionalBool(c, "isActive")
		require.Error(t, err)
	})
}
