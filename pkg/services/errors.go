package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrAlreadyActedOn is returned when approving a tool call that has
	// left the pending status
	ErrAlreadyActedOn = errors.New("tool call already acted on")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PermissionError reports missing membership or insufficient role.
type PermissionError struct {
	UserID      string
	WorkspaceID string
	Action      string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s is not allowed to %s in workspace %s", e.UserID, e.Action, e.WorkspaceID)
}

// NewPermissionError creates a new permission error
func NewPermissionError(userID, workspaceID, action string) error {
	return &PermissionError{UserID: userID, WorkspaceID: workspaceID, Action: action}
}

// IsPermissionError checks if an error is a permission error
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
