package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A nil cache must behave as a permanent miss so callers can skip the
// Redis-configured check entirely.
func TestNilCacheIsSafe(t *testing.T) {
	t.Parallel()

	var c *Cache
	ctx := context.Background()

	var dest []string
	assert.False(t, c.GetJSON(ctx, "analytics:trending", &dest))
	assert.Nil(t, dest)

	c.SetJSON(ctx, "analytics:trending", []string{"a"}, time.Minute)
	c.Delete(ctx, "analytics:trending")
	assert.NoError(t, c.Close())
}
