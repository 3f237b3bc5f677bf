package utils

import (
	"medibook-web/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()

	assert.True(t, strings.HasPrefix(id, constvars.REQUEST_ID_PREFIX), "request id should carry the service prefix")
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, GenerateRequestID(), "request ids should be unique")
}

func TestSessionJWT(t *testing.T) {
	secret := "test-session-secret"

	t.Run("Round Trip", func(t *testing.T) {
		sessionID := GenerateSessionID()
		token, err := GenerateSessionJWT(sessionID, secret)
		require.NoError(t, err)

		parsed, err := ParseSessionJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, sessionID, parsed)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT(GenerateSessionID(), secret)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Tampered Token", func(t *testing.T) {
		token, err := GenerateSessionJWT(GenerateSessionID(), secret)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token+"x", secret)
		assert.Error(t, err)
	})

	t.Run("Session ID Must Be UUID", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			constvars.SessionJWTClaimID: "../../etc/passwd",
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iat": 1}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})
}
