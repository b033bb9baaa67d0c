package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// snapshotHandler handles GET /api/runs/:run_id/snapshot/?since_seq=N.
// This is the canonical reconnect primitive: clients replay events
// with seq greater than the last one they observed.
func (s *Server) snapshotHandler(c *echo.Context) error {
	run, err := s.requireRunAccess(c, c.Param("run_id"))
	if err != nil {
		return err
	}

	sinceSeq := 0
	if v := c.QueryParam("since_seq"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "since_seq must be a non-negative integer")
		}
		sinceSeq = n
	}

	snap, err := s.snapshots.Snapshot(c.Request().Context(), run.ID, sinceSeq)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}
