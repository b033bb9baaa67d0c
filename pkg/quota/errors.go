package quota

import (
	"errors"
	"fmt"
)

// LimitExceededError reports which limit rejected an attempt, with a
// human-readable cap for API error bodies.
type LimitExceededError struct {
	Limit Limit
	Key   string
}

func (e *LimitExceededError) Error() string {
	switch e.Limit.Kind {
	case KindRate:
		return fmt.Sprintf("limit %s exceeded: max %d requests per %ds window",
			e.Limit.Name, e.Limit.Cap(), e.Limit.WindowSeconds)
	default:
		return fmt.Sprintf("limit %s exceeded: max %d concurrent",
			e.Limit.Name, e.Limit.MaxConcurrent)
	}
}

// IsLimitExceeded reports whether err carries a LimitExceededError.
func IsLimitExceeded(err error) bool {
	var le *LimitExceededError
	return errors.As(err, &le)
}
