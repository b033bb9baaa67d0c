package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var permErr *services.PermissionError
	if errors.As(err, &permErr) {
		return echo.NewHTTPError(http.StatusForbidden, permErr.Error())
	}
	var limitErr *quota.LimitExceededError
	if errors.As(err, &limitErr) {
		return echo.NewHTTPError(http.StatusTooManyRequests, limitErr.Error())
	}
	var transErr *runstate.IllegalTransitionError
	if errors.As(err, &transErr) {
		return echo.NewHTTPError(http.StatusBadRequest, transErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyActedOn) {
		return echo.NewHTTPError(http.StatusBadRequest, "tool call already acted on")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
