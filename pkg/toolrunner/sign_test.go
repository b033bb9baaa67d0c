package toolrunner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	secret := []byte("shared-secret")
	body := []byte(`{"tool_name":"search"}`)

	sig := Sign(secret, 1700000000, body)

	// Lowercase hex SHA-256 output.
	assert.Len(t, sig, 64)
	assert.Equal(t, sig, Sign(secret, 1700000000, body), "signing is deterministic")

	assert.NotEqual(t, sig, Sign(secret, 1700000001, body), "timestamp is covered")
	assert.NotEqual(t, sig, Sign(secret, 1700000000, []byte(`{}`)), "body is covered")
	assert.NotEqual(t, sig, Sign([]byte("other"), 1700000000, body), "secret is covered")
}

func TestVerify(t *testing.T) {
	secret := []byte("shared-secret")
	body := []byte(`{"tool_name":"search"}`)
	now := time.Unix(1700000000, 0)
	skew := 5 * time.Minute

	t.Run("accepts a valid signature", func(t *testing.T) {
		sig := Sign(secret, now.Unix(), body)
		require.NoError(t, Verify(secret, now.Unix(), body, sig, now, skew))
	})

	t.Run("accepts clock drift within skew", func(t *testing.T) {
		ts := now.Add(-4 * time.Minute).Unix()
		sig := Sign(secret, ts, body)
		require.NoError(t, Verify(secret, ts, body, sig, now, skew))
	})

	t.Run("rejects a stale timestamp", func(t *testing.T) {
		ts := now.Add(-6 * time.Minute).Unix()
		sig := Sign(secret, ts, body)
		err := Verify(secret, ts, body, sig, now, skew)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skew")
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		sig := Sign(secret, now.Unix(), body)
		err := Verify(secret, now.Unix(), []byte(`{"tool_name":"rm"}`), sig, now, skew)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})
}
