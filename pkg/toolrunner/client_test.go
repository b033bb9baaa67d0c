package toolrunner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.ToolrunnerConfig{
		URL:         url,
		Secret:      "shared-secret",
		HTTPTimeout: 5 * time.Second,
	})
}

func TestClient_Invoke(t *testing.T) {
	ctx := context.Background()

	t.Run("success round trip with valid signature", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			ts, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
			require.NoError(t, err)
			require.NoError(t, Verify([]byte("shared-secret"), ts, body,
				r.Header.Get(HeaderSignature), time.Now(), time.Minute))

			var req Request
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "search", req.ToolName)

			exitCode := 0
			_ = json.NewEncoder(w).Encode(Response{
				RequestID: req.RequestID,
				Status:    StatusCompleted,
				ExitCode:  &exitCode,
				Stdout:    "ok",
				Result:    map[string]any{"hits": float64(3)},
			})
		}))
		defer srv.Close()

		resp, err := newTestClient(srv.URL).Invoke(ctx, Request{
			RequestID:   "req-1",
			WorkspaceID: "ws-1",
			RunID:       "run-1",
			ToolName:    "search",
			Args:        map[string]any{"q": "x"},
		})
		require.NoError(t, err)

		assert.Equal(t, "/v1/execute", gotPath)
		assert.Equal(t, StatusCompleted, resp.Status)
		assert.Equal(t, "ok", resp.Stdout)
		require.NotNil(t, resp.ExitCode)
		assert.Zero(t, *resp.ExitCode)
	})

	t.Run("HTTP 500 maps to FAILED response, not error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "runner exploded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		resp, err := newTestClient(srv.URL).Invoke(ctx, Request{RequestID: "req-2", ToolName: "search"})
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, resp.Status)
		assert.Equal(t, "req-2", resp.RequestID)
		assert.Contains(t, resp.Stderr, "HTTP 500")
		assert.Contains(t, resp.Stderr, "runner exploded")
	})

	t.Run("transport failure maps to FAILED response", func(t *testing.T) {
		resp, err := newTestClient("http://127.0.0.1:1").Invoke(ctx, Request{RequestID: "req-3", ToolName: "search"})
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, resp.Status)
		assert.Contains(t, resp.Stderr, "transport error")
	})

	t.Run("undecodable body maps to FAILED response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		resp, err := newTestClient(srv.URL).Invoke(ctx, Request{RequestID: "req-4", ToolName: "search"})
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, resp.Status)
		assert.Contains(t, resp.Stderr, "decode error")
	})
}
