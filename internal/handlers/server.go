// internal/handlers/server.go
package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/promptclash/promptclash/internal/game"
)

// writeTimeout bounds every outbound WebSocket write so one stalled client
// cannot hold up a broadcast.
const writeTimeout = 3 * time.Second

// conn tracks one live client: its transport-assigned id, the socket, and
// the code of the session it has created or joined (empty until then).
type conn struct {
	id uuid.UUID
	ws *websocket.Conn

	mu   sync.Mutex
	code string
}

func (c *conn) sessionCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

func (c *conn) setSessionCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.code = code
}

// Server owns the session directory and the registry of live connections
// shared by every WebSocket client.
type Server struct {
	Sessions *game.SessionStore
	Logger   *logrus.Logger

	mu    sync.Mutex
	conns map[uuid.UUID]*conn
}

// NewServer wires an empty session directory to the given logger.
func NewServer(logger *logrus.Logger) *Server {
	return &Server{
		Sessions: game.NewSessionStore(),
		Logger:   logger,
		conns:    make(map[uuid.UUID]*conn),
	}
}

func (s *Server) register(c *conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[c.id] = c
}

func (s *Server) unregister(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

func (s *Server) connFor(id uuid.UUID) (*conn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conns[id]
	return c, ok
}

// broadcastState pushes one personalized game_state message to every roster
// member of sess. Snapshots are computed per player; writes happen off the
// session lock and asynchronously so game logic never blocks on a slow
// socket.
func (s *Server) broadcastState(sess *game.Session) {
	type outbound struct {
		target *conn
		data   []byte
	}

	var queue []outbound
	for _, id := range sess.PlayerIDs() {
		target, ok := s.connFor(id)
		if !ok {
			continue
		}
		snap := sess.SnapshotFor(id)
		data, err := json.Marshal(struct {
			Type  string        `json:"type"`
			State game.Snapshot `json:"state"`
		}{Type: "game_state", State: snap})
		if err != nil {
			s.Logger.Errorf("failed to marshal game_state for player %s in session %s: %v", id, sess.Code, err)
			continue
		}
		queue = append(queue, outbound{target: target, data: data})
	}

	go func() {
		for _, out := range queue {
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := out.target.ws.Write(ctx, websocket.MessageText, out.data)
			cancel()
			if err != nil {
				s.Logger.Warnf("failed to write game_state to player %s in session %s: %v", out.target.id, sess.Code, err)
			}
		}
	}()
}

// sendJSON writes one message to a single connection with the standard write
// timeout.
func (s *Server) sendJSON(c *conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Logger.Errorf("failed to marshal message for player %s: %v", c.id, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := c.ws.Write(ctx, websocket.MessageText, data); err != nil {
		s.Logger.Warnf("failed to write message to player %s: %v", c.id, err)
	}
}
