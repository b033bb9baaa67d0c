package executor

import (
	"errors"
	"fmt"

	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
)

// TransientError marks a tick failure the scheduler should retry with
// backoff instead of failing the run. Lease contention and RUN_TICK
// quota exhaustion are the usual causes.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient run error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether a tick error calls for a retry rather
// than marking the run FAILED.
func IsTransient(err error) bool {
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	// Row lock contention and quota overflow are transient by
	// definition even when not wrapped.
	return errors.Is(err, journal.ErrRunLocked) || quota.IsLimitExceeded(err)
}
