package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
)

// contextKeyUserID is the echo context key holding the authenticated
// user ID set by the session middleware.
const contextKeyUserID = "user_id"

// EncodeSession produces a signed session cookie value for userID,
// valid for ttl. Format: base64url(user_id).expiry_unix.hex(hmac).
// The signature covers both the user ID and the expiry.
func EncodeSession(secret, userID string, ttl time.Duration) string {
	user := base64.RawURLEncoding.EncodeToString([]byte(userID))
	exp := strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	return user + "." + exp + "." + sessionSignature(secret, user, exp)
}

func sessionSignature(secret, user, exp string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(user + "." + exp))
	return hex.EncodeToString(mac.Sum(nil))
}

// decodeSession validates a session cookie value and returns the user
// ID it names.
func decodeSession(secret, value string) (string, error) {
	parts := strings.SplitN(value, ".", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed session cookie")
	}
	user, exp, sig := parts[0], parts[1], parts[2]

	expected := sessionSignature(secret, user, exp)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", fmt.Errorf("session signature mismatch")
	}

	expUnix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed session expiry")
	}
	if time.Now().Unix() > expUnix {
		return "", fmt.Errorf("session expired")
	}

	raw, err := base64.RawURLEncoding.DecodeString(user)
	if err != nil || len(raw) == 0 {
		return "", fmt.Errorf("malformed session subject")
	}
	return string(raw), nil
}

// sessionAuth returns middleware that resolves the signed session
// cookie to a user ID. Requests without a valid session get 401.
func (s *Server) sessionAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			cookie, err := c.Cookie(s.cfg.Server.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			userID, err := decodeSession(s.cfg.Server.SessionSecret, cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}
			c.Set(contextKeyUserID, userID)
			return next(c)
		}
	}
}

// currentUser returns the user ID stamped by sessionAuth.
func currentUser(c *echo.Context) string {
	if v, ok := c.Get(contextKeyUserID).(string); ok {
		return v
	}
	return ""
}
