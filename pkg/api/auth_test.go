package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookie(t *testing.T) {
	const secret = "test-session-secret"

	t.Run("round trip", func(t *testing.T) {
		value := EncodeSession(secret, "user-1", time.Hour)
		userID, err := decodeSession(secret, value)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		value := EncodeSession(secret, "user-1", time.Hour)
		_, err := decodeSession("other-secret", value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signature")
	})

	t.Run("rejects tampered subject", func(t *testing.T) {
		value := EncodeSession(secret, "user-1", time.Hour)
		parts := strings.SplitN(value, ".", 3)
		forged := "Zm9yZ2Vk" + "." + parts[1] + "." + parts[2]
		_, err := decodeSession(secret, forged)
		require.Error(t, err)
	})

	t.Run("rejects expired session", func(t *testing.T) {
		value := EncodeSession(secret, "user-1", -time.Minute)
		_, err := decodeSession(secret, value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, v := range []string{"", "a", "a.b", "a.b.c.d extra", "!!!.123.abc"} {
			_, err := decodeSession(secret, v)
			assert.Error(t, err, "value %q", v)
		}
	})
}
