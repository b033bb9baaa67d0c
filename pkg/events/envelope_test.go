package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(RunTopic("r1"), EventStateChanged, map[string]any{
		"from": "pending", "to": "running",
	})

	assert.Equal(t, "push", env.Type)
	assert.Equal(t, "run.r1", env.Topic)
	assert.Equal(t, EventStateChanged, env.Event)

	ts, err := time.Parse(time.RFC3339Nano, env.TS)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestEnvelope_Marshal(t *testing.T) {
	t.Run("small payload passes through intact", func(t *testing.T) {
		env := NewEnvelope(RunTopic("r1"), EventStepCreated, map[string]any{"step_index": 1})
		raw, err := env.Marshal()
		require.NoError(t, err)

		var decoded Envelope
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.False(t, decoded.Truncated)
		assert.Equal(t, float64(1), decoded.Data["step_index"])
	})

	t.Run("oversized payload collapses to a routing stub", func(t *testing.T) {
		env := NewEnvelope(RunTopic("r1"), EventToolCallCompleted, map[string]any{
			"stdout": strings.Repeat("x", 10_000),
		})
		env.RunID = "r1"
		seq := 42
		env.Seq = &seq

		raw, err := env.Marshal()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(raw), 7900)

		var decoded Envelope
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.True(t, decoded.Truncated)
		assert.Nil(t, decoded.Data)

		// The stub keeps the routing fields clients need to recover
		// the full event via snapshot.
		assert.Equal(t, "run.r1", decoded.Topic)
		assert.Equal(t, EventToolCallCompleted, decoded.Event)
		require.NotNil(t, decoded.Seq)
		assert.Equal(t, 42, *decoded.Seq)
		assert.Equal(t, "r1", decoded.RunID)
	})
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "run.abc", RunTopic("abc"))
	assert.Equal(t, "ws.abc", WorkspaceTopic("abc"))
	assert.Equal(t, "approvals.abc", ApprovalsTopic("abc"))
}
