// Package toolrunner is the signed HTTP client for the external
// tool-runner process that actually executes tool calls.
package toolrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/agentmaestro/agentmaestro/pkg/config"
)

// Tool-runner result statuses.
const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// executePath is the single endpoint the tool-runner exposes.
const executePath = "/v1/execute"

// Request is the execute request body. Marshaled compact, without
// whitespace; the signature covers the exact bytes sent.
type Request struct {
	RequestID   string         `json:"request_id"`
	WorkspaceID string         `json:"workspace_id"`
	RunID       string         `json:"run_id"`
	ToolName    string         `json:"tool_name"`
	Args        map[string]any `json:"args"`
	Policy      Policy         `json:"policy"`
	Limits      Limits         `json:"limits"`
}

// Policy carries the tool definition's risk posture to the runner.
type Policy struct {
	RiskLevel        string `json:"risk_level"`
	ToolDefinitionID string `json:"tool_definition_id"`
	RequiresApproval bool   `json:"requires_approval"`
}

// Limits are server-enforced execution bounds the runner honors.
type Limits struct {
	TimeoutS       int `json:"timeout_s"`
	MaxOutputBytes int `json:"max_output_bytes"`
}

// Response is the execute result. A transport or HTTP-level failure is
// mapped to a FAILED response with the diagnostic in Stderr, so
// callers handle exactly one shape.
type Response struct {
	RequestID  string         `json:"request_id"`
	Status     string         `json:"status"`
	ExitCode   *int           `json:"exit_code,omitempty"`
	Stdout     string         `json:"stdout"`
	Stderr     string         `json:"stderr"`
	DurationMs int64          `json:"duration_ms"`
	Result     map[string]any `json:"result,omitempty"`
}

// Client invokes the tool-runner over HTTP with HMAC-signed requests.
type Client struct {
	baseURL string
	secret  []byte
	http    *http.Client
}

// NewClient creates a tool-runner client from config.
func NewClient(cfg config.ToolrunnerConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		secret:  []byte(cfg.Secret),
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Invoke executes a tool call. Transport errors and non-2xx responses
// never surface as Go errors; they come back as a FAILED Response.
// An error return means the request could not even be constructed.
func (c *Client) Invoke(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal tool-runner request: %w", err)
	}

	ts := time.Now().Unix()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+executePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tool-runner request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderTimestamp, fmt.Sprintf("%d", ts))
	httpReq.Header.Set(HeaderSignature, Sign(c.secret, ts, body))

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		slog.Warn("Tool-runner request failed", "tool", req.ToolName, "error", err)
		return failedResponse(req.RequestID, start, fmt.Sprintf("tool-runner transport error: %v", err)), nil
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return failedResponse(req.RequestID, start, fmt.Sprintf("tool-runner response read error: %v", err)), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("Tool-runner returned error status",
			"tool", req.ToolName, "status", resp.StatusCode)
		return failedResponse(req.RequestID, start,
			fmt.Sprintf("tool-runner returned HTTP %d: %s", resp.StatusCode, truncate(string(respBody), 512))), nil
	}

	var out Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return failedResponse(req.RequestID, start, fmt.Sprintf("tool-runner response decode error: %v", err)), nil
	}
	return &out, nil
}

func failedResponse(requestID string, start time.Time, diagnostic string) *Response {
	return &Response{
		RequestID:  requestID,
		Status:     StatusFailed,
		Stderr:     diagnostic,
		DurationMs: time.Since(start).Milliseconds(),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
