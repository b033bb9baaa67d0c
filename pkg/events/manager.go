package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// listenTimeout bounds how long a LISTEN command may block when a topic
// gains its first subscriber. Without it a stalled connection would
// block the subscribing client's read loop indefinitely.
const listenTimeout = 10 * time.Second

// Session carries the authenticated identity of one WebSocket client.
// The API layer verifies workspace membership before the upgrade and
// stamps the role-derived capabilities here; the manager itself never
// touches the database.
type Session struct {
	UserID      string
	WorkspaceID string
	RunID       string // empty for workspace-stream connections
	CanApprove  bool   // role is owner, admin or operator
	CanOperate  bool   // may cancel/pause/resume/retry/spawn
}

// CommandHandler executes domain commands arriving over a WebSocket
// connection. The returned frame, if non-nil, is sent back to the
// client as-is.
type CommandHandler interface {
	HandleCommand(ctx context.Context, sess *Session, msg *ClientMessage) (any, error)
}

// ConnectionManager tracks WebSocket connections and their topic
// subscriptions. Each process has one instance; cross-pod fanout goes
// through PostgreSQL NOTIFY via the Listener.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// topic → set of connection IDs
	topics  map[string]map[string]bool
	topicMu sync.RWMutex

	handler CommandHandler

	listener   *Listener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// subscriptions is accessed without a lock: every read and write
// happens on the goroutine that owns the connection (HandleConnection's
// read loop and its deferred cleanup).
type Connection struct {
	ID            string
	Sess          *Session
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a manager. handler may be nil, in which
// case domain commands are rejected with an error frame.
func NewConnectionManager(handler CommandHandler, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		topics:       make(map[string]map[string]bool),
		handler:      handler,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NOTIFY listener for dynamic LISTEN/UNLISTEN.
// Called once during startup.
func (m *ConnectionManager) SetListener(l *Listener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection owns the lifecycle of one upgraded WebSocket
// connection. It subscribes the client to its home topic, sends the
// connected frame, then serves commands until the connection closes.
// Blocks for the life of the connection.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, sess *Session) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Sess:          sess,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	home := WorkspaceTopic(sess.WorkspaceID)
	if sess.RunID != "" {
		home = RunTopic(sess.RunID)
	}
	if err := m.subscribe(c, home); err != nil {
		m.sendJSON(c, map[string]string{"type": "error", "message": "subscription failed"})
		return
	}

	m.sendJSON(c, map[string]string{
		"type":          "connected",
		"connection_id": connID,
		"topic":         home,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends a payload to every connection subscribed to topic.
func (m *ConnectionManager) Broadcast(topic string, payload []byte) {
	m.topicMu.RLock()
	connIDs, exists := m.topics[topic]
	if !exists {
		m.topicMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.topicMu.RUnlock()

	// Snapshot connection pointers, then release the lock before the
	// writes so a slow client cannot stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, payload); err != nil {
			slog.Warn("Failed to push to WebSocket client",
				"connection_id", conn.ID, "topic", topic, "error", err)
		}
	}
}

// ActiveConnections returns the count of live WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount is used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(topic string) int {
	m.topicMu.RLock()
	defer m.topicMu.RUnlock()
	return len(m.topics[topic])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Cmd {
	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})

	case "subscribe_approvals":
		if !c.Sess.CanApprove {
			m.sendJSON(c, map[string]string{
				"type": "error", "cmd": msg.Cmd,
				"message": "approver role required",
			})
			return
		}
		topic := ApprovalsTopic(c.Sess.WorkspaceID)
		if err := m.subscribe(c, topic); err != nil {
			m.sendJSON(c, map[string]string{
				"type": "error", "cmd": msg.Cmd,
				"message": "failed to subscribe",
			})
			return
		}
		m.sendJSON(c, map[string]string{"type": "subscribed", "topic": topic})

	case "unsubscribe_approvals":
		m.unsubscribe(c, ApprovalsTopic(c.Sess.WorkspaceID))
		m.sendJSON(c, map[string]string{
			"type":  "unsubscribed",
			"topic": ApprovalsTopic(c.Sess.WorkspaceID),
		})

	default:
		if m.handler == nil {
			m.sendJSON(c, map[string]string{
				"type": "error", "cmd": msg.Cmd, "message": "unsupported command",
			})
			return
		}
		frame, err := m.handler.HandleCommand(ctx, c.Sess, msg)
		if err != nil {
			m.sendJSON(c, map[string]string{
				"type": "error", "cmd": msg.Cmd, "message": err.Error(),
			})
			return
		}
		if frame != nil {
			m.sendJSON(c, frame)
		}
	}
}

// subscribe registers a connection for a topic and starts LISTEN when
// it is the first subscriber. LISTEN is synchronous so a success
// response is never sent for a topic PostgreSQL is not delivering.
func (m *ConnectionManager) subscribe(c *Connection, topic string) error {
	m.topicMu.Lock()
	needsListen := false
	if _, exists := m.topics[topic]; !exists {
		m.topics[topic] = make(map[string]bool)
		needsListen = true
	}
	m.topics[topic][c.ID] = true
	m.topicMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, topic); err != nil {
				slog.Error("Failed to LISTEN on topic", "topic", topic, "error", err)
				m.cleanupFailedTopic(c, topic)
				return fmt.Errorf("LISTEN on %s: %w", topic, err)
			}
		}
	}

	c.subscriptions[topic] = true
	return nil
}

// cleanupFailedTopic removes every subscriber from a topic after a
// LISTEN failure and notifies the affected connections. Connections
// that raced in while LISTEN was in flight believed they were
// subscribed; they must be told otherwise so they can re-subscribe or
// fall back to snapshot polling.
func (m *ConnectionManager) cleanupFailedTopic(triggering *Connection, topic string) {
	m.topicMu.Lock()
	affectedIDs := make([]string, 0, len(m.topics[topic]))
	for connID := range m.topics[topic] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.topics, topic)
	m.topicMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "topic", topic)
		m.sendJSON(conn, map[string]string{
			"type":    "error",
			"topic":   topic,
			"message": "topic listen failed; subscription removed",
		})
	}
}

// unsubscribe removes a connection from a topic and stops LISTEN when
// the last subscriber leaves. The UNLISTEN goroutine re-checks the
// topic map first so a rapid unsubscribe/resubscribe cycle cannot drop
// an active LISTEN.
func (m *ConnectionManager) unsubscribe(c *Connection, topic string) {
	m.topicMu.Lock()
	if subs, exists := m.topics[topic]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.topics, topic)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.topicMu.RLock()
					_, resubscribed := m.topics[topic]
					m.topicMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), topic); err != nil {
						slog.Error("Failed to UNLISTEN topic", "topic", topic, "error", err)
					}
				}()
			}
		}
	}
	m.topicMu.Unlock()

	delete(c.subscriptions, topic)
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for topic := range c.subscriptions {
		m.unsubscribe(c, topic)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket frame",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket frame",
			"connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
