package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error is 400",
			err:      services.NewValidationError("since_seq", "must be >= 0"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "permission error is 403",
			err:      services.NewPermissionError("user-1", "ws-1", "cancel run"),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "quota overflow is 429",
			err:      &quota.LimitExceededError{Limit: quota.RunCreation},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:     "wrapped quota overflow is 429",
			err:      fmt.Errorf("create run: %w", &quota.LimitExceededError{Limit: quota.SpawnSubrun}),
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:     "illegal transition is 400",
			err:      &runstate.IllegalTransitionError{RunID: "run-1", From: agentrun.StatusPending, To: agentrun.StatusPaused},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrapped illegal transition is 400",
			err: fmt.Errorf("pause run: %w",
				&runstate.IllegalTransitionError{RunID: "run-1", From: agentrun.StatusCompleted, To: agentrun.StatusRunning}),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found is 404",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already acted on is 400",
			err:      services.ErrAlreadyActedOn,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unexpected error is 500",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := mapServiceError(tc.err)
			assert.Equal(t, tc.wantCode, httpErr.Code)
		})
	}
}

func TestMapServiceError_QuotaNamesLimit(t *testing.T) {
	httpErr := mapServiceError(&quota.LimitExceededError{Limit: quota.RunCreation})
	assert.Contains(t, fmt.Sprint(httpErr.Message), "RUN_CREATION")
}

func TestMapServiceError_IllegalTransitionNamesEdge(t *testing.T) {
	httpErr := mapServiceError(&runstate.IllegalTransitionError{
		RunID: "run-1",
		From:  agentrun.StatusPending,
		To:    agentrun.StatusPaused,
	})
	msg := fmt.Sprint(httpErr.Message)
	assert.Contains(t, msg, "pending")
	assert.Contains(t, msg, "paused")
}
