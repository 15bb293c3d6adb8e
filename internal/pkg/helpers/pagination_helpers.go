package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseListParams extracts and validates limit/offset query parameters.
// Malformed values are rejected rather than silently dropped.
func ParseListParams(c *gin.Context) (limit, offset int, err error) {
	limit = DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return 0, 0, apperrors.NewBadRequestError("limit must be a positive integer")
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}

	offset = 0
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apperrors.NewBadRequestError("offset must be a non-negative integer")
		}
	}

	return limit, offset, nil
}

// ParseOptionalInt parses an optional integer query parameter.
// Returns nil when the parameter is absent and an error when malformed.
func ParseOptionalInt(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError(name + " must be an integer")
	}
	return &v, nil
}

// ParseOptionalFloat parses an optional float query parameter.
func ParseOptionalFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError(name + " must be a number")
	}
	return &v, nil
}

// ParseOptionalEnum parses an optional query parameter restricted to a
// fixed set of values.
func ParseOptionalEnum(c *gin.Context, name string, allowed ...string) (*string, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, a := range allowed {
		if raw == a {
			return &raw, nil
		}
	}
	return nil, apperrors.NewBadRequestError(name + " has an unsupported value")
}

// ParseOptionalBool parses an optional boolean query parameter.
func ParseOptionalBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError(name + " must be true or false")
	}
	return &v, nil
}
