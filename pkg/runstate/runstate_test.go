package runstate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/agentmaestro/agentmaestro/ent/agentrun"
)

var allStatuses = []agentrun.Status{
	agentrun.StatusPending,
	agentrun.StatusRunning,
	agentrun.StatusPaused,
	agentrun.StatusWaitingForApproval,
	agentrun.StatusWaitingForTool,
	agentrun.StatusWaitingForSubrun,
	agentrun.StatusWaitingForUser,
	agentrun.StatusCompleted,
	agentrun.StatusFailed,
	agentrun.StatusCanceled,
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to agentrun.Status
		want     bool
	}{
		{agentrun.StatusPending, agentrun.StatusRunning, true},
		{agentrun.StatusPending, agentrun.StatusCanceled, true},
		{agentrun.StatusPending, agentrun.StatusFailed, true},
		{agentrun.StatusPending, agentrun.StatusWaitingForSubrun, true},
		{agentrun.StatusPending, agentrun.StatusCompleted, false},
		{agentrun.StatusPending, agentrun.StatusPaused, false},

		{agentrun.StatusRunning, agentrun.StatusCompleted, true},
		{agentrun.StatusRunning, agentrun.StatusPaused, true},
		{agentrun.StatusRunning, agentrun.StatusWaitingForApproval, true},
		{agentrun.StatusRunning, agentrun.StatusWaitingForTool, true},
		{agentrun.StatusRunning, agentrun.StatusWaitingForSubrun, true},
		{agentrun.StatusRunning, agentrun.StatusWaitingForUser, true},
		{agentrun.StatusRunning, agentrun.StatusPending, false},

		{agentrun.StatusPaused, agentrun.StatusRunning, true},
		{agentrun.StatusPaused, agentrun.StatusCompleted, false},
		{agentrun.StatusWaitingForApproval, agentrun.StatusRunning, true},
		{agentrun.StatusWaitingForApproval, agentrun.StatusCompleted, false},
		{agentrun.StatusWaitingForSubrun, agentrun.StatusCanceled, true},

		{agentrun.StatusCompleted, agentrun.StatusRunning, false},
		{agentrun.StatusFailed, agentrun.StatusRunning, false},
		{agentrun.StatusCanceled, agentrun.StatusPending, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range allStatuses {
		terminal := s == agentrun.StatusCompleted ||
			s == agentrun.StatusFailed ||
			s == agentrun.StatusCanceled
		assert.Equal(t, terminal, IsTerminal(s), "%s", s)
	}
}

func TestIsWaiting(t *testing.T) {
	assert.True(t, IsWaiting(agentrun.StatusWaitingForApproval))
	assert.True(t, IsWaiting(agentrun.StatusWaitingForTool))
	assert.True(t, IsWaiting(agentrun.StatusWaitingForSubrun))
	assert.True(t, IsWaiting(agentrun.StatusWaitingForUser))
	assert.False(t, IsWaiting(agentrun.StatusRunning))
	assert.False(t, IsWaiting(agentrun.StatusPaused))
	assert.False(t, IsWaiting(agentrun.StatusCompleted))
}

// Structural properties of the edge table that every future edit must
// preserve: terminal statuses have no exits, and every non-terminal
// status can reach FAILED and CANCELED.
func TestEdgeTableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	statusGen := gen.OneConstOf(
		allStatuses[0], allStatuses[1], allStatuses[2], allStatuses[3],
		allStatuses[4], allStatuses[5], allStatuses[6], allStatuses[7],
		allStatuses[8], allStatuses[9],
	)

	properties.Property("terminal statuses have no outgoing edges", prop.ForAll(
		func(from, to agentrun.Status) bool {
			if !IsTerminal(from) {
				return true
			}
			return !CanTransition(from, to)
		},
		statusGen, statusGen,
	))

	properties.Property("self edges are never legal", prop.ForAll(
		func(s agentrun.Status) bool {
			return !CanTransition(s, s)
		},
		statusGen,
	))

	properties.Property("non-terminal statuses can fail and cancel", prop.ForAll(
		func(from agentrun.Status) bool {
			if IsTerminal(from) {
				return true
			}
			return CanTransition(from, agentrun.StatusFailed) &&
				CanTransition(from, agentrun.StatusCanceled)
		},
		statusGen,
	))

	properties.TestingRun(t)
}
