package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// notifyLimit is the largest NOTIFY payload we emit. PostgreSQL caps
// payloads at 8000 bytes; we stay under it and fall back to a routing
// envelope so clients can recover the full event via snapshot.
const notifyLimit = 7900

// Envelope is the fixed wire format for every push message.
type Envelope struct {
	Type        string         `json:"type"` // always "push"
	Topic       string         `json:"topic"`
	TS          string         `json:"ts"` // UTC ISO-8601
	Event       string         `json:"event"`
	Data        map[string]any `json:"data,omitempty"`
	Seq         *int           `json:"seq,omitempty"`
	RunID       string         `json:"run_id,omitempty"`
	WorkspaceID string         `json:"workspace_id,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	Truncated   bool           `json:"truncated,omitempty"`
}

// NewEnvelope builds a push envelope stamped with the current UTC time.
func NewEnvelope(topic, event string, data map[string]any) Envelope {
	return Envelope{
		Type:  "push",
		Topic: topic,
		TS:    time.Now().UTC().Format(time.RFC3339Nano),
		Event: event,
		Data:  data,
	}
}

// Marshal serializes the envelope, replacing it with a minimal routing
// envelope when the full payload would exceed the NOTIFY limit. The
// routing fields are enough for the client to fetch the event body via
// snapshot.
func (e Envelope) Marshal() ([]byte, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal push envelope: %w", err)
	}
	if len(raw) <= notifyLimit {
		return raw, nil
	}

	stub := e
	stub.Data = nil
	stub.Truncated = true
	raw, err = json.Marshal(stub)
	if err != nil {
		return nil, fmt.Errorf("marshal truncated push envelope: %w", err)
	}
	return raw, nil
}

// Execer is the slice of a transaction the notifier needs. Satisfied
// by ent.Tx (with the execquery feature) and by *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NotifyTx issues pg_notify on the caller's transaction. PostgreSQL
// holds the notification until COMMIT, so a rolled-back transaction
// never reaches subscribers.
func NotifyTx(ctx context.Context, ex Execer, topic string, env Envelope) error {
	payload, err := env.Marshal()
	if err != nil {
		return err
	}
	if _, err := ex.ExecContext(ctx, "SELECT pg_notify($1, $2)", topic, string(payload)); err != nil {
		return fmt.Errorf("pg_notify %s: %w", topic, err)
	}
	return nil
}
