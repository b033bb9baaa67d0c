// Package quota provides per-workspace admission control: fixed-window
// rate limits and concurrency token sets, both backed by a shared KV so
// limits hold across replicas.
package quota

import "math"

// Kind distinguishes the two limit families.
type Kind string

// Limit kinds.
const (
	KindRate        Kind = "rate"
	KindConcurrency Kind = "concurrency"
)

// Scope names what a limit is keyed by.
type Scope string

// Limit scopes.
const (
	ScopeWorkspace Scope = "workspace"
	ScopeRun       Scope = "run"
	ScopeUser      Scope = "user"
)

// Limit describes one named admission rule.
type Limit struct {
	Name          string
	Kind          Kind
	Scope         Scope
	WindowSeconds int     // rate only
	RPS           float64 // rate only
	MaxConcurrent int     // concurrency only
}

// Cap returns the request cap for a rate limit window: ceil(rps * window).
func (l Limit) Cap() int64 {
	return int64(math.Ceil(l.RPS * float64(l.WindowSeconds)))
}

// Enumerated limits. Names are stable; they appear in KV keys and in
// LimitExceeded errors surfaced to clients.
var (
	RunCreation = Limit{Name: "RUN_CREATION", Kind: KindRate, Scope: ScopeWorkspace, WindowSeconds: 1, RPS: 10.29}
	SpawnSubrun = Limit{Name: "SPAWN_SUBRUN", Kind: KindRate, Scope: ScopeWorkspace, WindowSeconds: 1, RPS: 2.14}
	Snapshot    = Limit{Name: "SNAPSHOT", Kind: KindRate, Scope: ScopeWorkspace, WindowSeconds: 1, RPS: 18.49}
	RunTick     = Limit{Name: "RUN_TICK", Kind: KindRate, Scope: ScopeWorkspace, WindowSeconds: 1, RPS: 41}

	ConcurrentParentRuns   = Limit{Name: "CONCURRENT_PARENT_RUNS", Kind: KindConcurrency, Scope: ScopeWorkspace, MaxConcurrent: 5}
	ConcurrentTotalRuns    = Limit{Name: "CONCURRENT_TOTAL_RUNS", Kind: KindConcurrency, Scope: ScopeWorkspace, MaxConcurrent: 12}
	ConcurrentToolCallsWS  = Limit{Name: "CONCURRENT_TOOL_CALLS_WS", Kind: KindConcurrency, Scope: ScopeWorkspace, MaxConcurrent: 6}
	ConcurrentToolCallsRun = Limit{Name: "CONCURRENT_TOOL_CALLS_RUN", Kind: KindConcurrency, Scope: ScopeRun, MaxConcurrent: 1}
	WSConnectionsWorkspace = Limit{Name: "WS_CONNECTIONS_WORKSPACE", Kind: KindConcurrency, Scope: ScopeWorkspace, MaxConcurrent: 20}
	WSConnectionsUser      = Limit{Name: "WS_CONNECTIONS_USER", Kind: KindConcurrency, Scope: ScopeUser, MaxConcurrent: 5}
)
