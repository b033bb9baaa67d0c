package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// approveToolCallResponse reports the outcome of an approval.
type approveToolCallResponse struct {
	ToolCallID string `json:"tool_call_id"`
	RunID      string `json:"run_id"`
	Status     string `json:"status"`
}

// approveToolCallHandler handles POST /api/toolcalls/:tool_call_id/approve/.
func (s *Server) approveToolCallHandler(c *echo.Context) error {
	tc, err := s.toolcalls.Approve(c.Request().Context(), c.Param("tool_call_id"), currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &approveToolCallResponse{
		ToolCallID: tc.ID,
		RunID:      tc.RunID,
		Status:     string(tc.Status),
	})
}
