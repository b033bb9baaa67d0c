package toolrunner

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Signature header names on tool-runner requests.
const (
	HeaderTimestamp = "X-AM-Timestamp"
	HeaderSignature = "X-AM-Signature"
)

// Sign computes the lowercase hex HMAC-SHA256 of "<ts>." + body with
// the shared secret. ts is integer UNIX seconds.
func Sign(secret []byte, ts int64, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signature produced by Sign, rejecting timestamps
// outside the allowed skew. Comparison is constant-time.
func Verify(secret []byte, ts int64, body []byte, signature string, now time.Time, skew time.Duration) error {
	drift := now.Unix() - ts
	if drift < 0 {
		drift = -drift
	}
	if time.Duration(drift)*time.Second > skew {
		return fmt.Errorf("signature timestamp outside allowed skew of %s", skew)
	}
	expected := Sign(secret, ts, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
