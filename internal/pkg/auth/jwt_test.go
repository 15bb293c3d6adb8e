package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenIssuer: "test-issuer",
		TokenExp:    exp,
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken("auth0|abc123", "student@uni.edu", "STUDENT")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "auth0|abc123", claims.Subject)
		assert.Equal(t, "student@uni.edu", claims.Email)
		assert.Equal(t, "STUDENT", claims.Role)
		assert.Equal(t, "test-issuer", claims.Issuer)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		expired := newTestService(-time.Minute)
		token, err := expired.GenerateToken("auth0|abc123", "student@uni.edu", "STUDENT")
		require.NoError(t, err)

		_, err = expired.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenIssuer: "test-issuer"})
		token, err := other.GenerateToken("auth0|abc123", "student@uni.edu", "STUDENT")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken("", "student@uni.edu", "STUDENT")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
