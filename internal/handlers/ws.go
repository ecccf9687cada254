// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/promptclash/promptclash/internal/game"
	"github.com/promptclash/promptclash/internal/middleware"
)

// Message is the inbound action envelope. Type selects the action; the other
// fields are populated per action as documented in the handler below.
type Message struct {
	Type         string `json:"type"`
	PlayerName   string `json:"playerName,omitempty"`
	SessionCode  string `json:"sessionCode,omitempty"`
	Card         string `json:"card,omitempty"`
	PlayerID     string `json:"playerId,omitempty"`
	SubmissionID string `json:"submissionId,omitempty"`
}

// Ack is the reply for the request/acknowledge actions (create and join).
type Ack struct {
	Type        string `json:"type"`
	Success     bool   `json:"success"`
	SessionCode string `json:"sessionCode,omitempty"`
	Error       string `json:"error,omitempty"`
}

// WSHandler upgrades the connection, assigns it an opaque id, and runs the
// read loop until the client goes away. The transport-triggered disconnect
// doubles as the player's leave action.
func WSHandler(srv *Server) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // adjust for production deployments
		})
		if err != nil {
			srv.Logger.Warnf("WebSocket accept error from %s: %v", r.RemoteAddr, err)
			return
		}
		defer ws.Close(websocket.StatusInternalError, "internal error during handler exit")

		client := &conn{id: uuid.New(), ws: ws}
		srv.register(client)
		middleware.LogWebSocketConnect(srv.Logger, r.RemoteAddr, client.id.String())

		readMessages(r.Context(), client, srv)

		srv.handleDisconnect(client)
		middleware.LogWebSocketDisconnect(srv.Logger, r.RemoteAddr, client.id.String())
		ws.Close(websocket.StatusNormalClosure, "")
	}
}

// readMessages reads and routes typed JSON actions until the socket closes
// or the request context is cancelled.
func readMessages(ctx context.Context, client *conn, srv *Server) {
	for {
		msgType, data, err := client.ws.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			switch {
			case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
				srv.Logger.Infof("WebSocket closed normally for player %s", client.id)
			case errors.Is(err, context.Canceled):
				srv.Logger.Infof("WebSocket context cancelled for player %s", client.id)
			default:
				srv.Logger.Warnf("WebSocket read error for player %s: %v", client.id, err)
			}
			return
		}
		if msgType != websocket.MessageText {
			srv.Logger.Warnf("ignoring non-text message from player %s", client.id)
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			srv.Logger.Warnf("invalid JSON from player %s: %v", client.id, err)
			srv.sendJSON(client, Ack{Type: "error", Error: "invalid JSON"})
			continue
		}

		srv.Logger.Debugf("action %q from player %s", msg.Type, client.id)
		srv.dispatch(client, msg)
	}
}

// dispatch routes one action. Engine-level precondition and authorization
// failures return false and produce no broadcast; the client must treat the
// missing state push as a rejected action.
func (s *Server) dispatch(client *conn, msg Message) {
	switch msg.Type {
	case "create_session":
		s.handleCreate(client, msg)

	case "join_session":
		s.handleJoin(client, msg)

	case "start_round":
		if sess, ok := s.session(msg.SessionCode); ok && sess.StartRound() {
			s.broadcastState(sess)
		}

	case "submit_card":
		if sess, ok := s.session(msg.SessionCode); ok && sess.SubmitCard(client.id, msg.Card) {
			s.broadcastState(sess)
		}

	case "select_winner":
		sess, ok := s.session(msg.SessionCode)
		if !ok {
			return
		}
		winnerID, ok := resolveWinner(sess, msg)
		if ok && sess.SelectWinner(client.id, winnerID) {
			s.broadcastState(sess)
		}

	case "advance_round":
		if sess, ok := s.session(msg.SessionCode); ok && sess.AdvanceRound() {
			s.broadcastState(sess)
		}

	case "ping":
		s.sendJSON(client, map[string]string{"type": "pong"})

	default:
		s.sendJSON(client, Ack{Type: "error", Error: fmt.Sprintf("unknown action type: %s", msg.Type)})
	}
}

func (s *Server) handleCreate(client *conn, msg Message) {
	if client.sessionCode() != "" {
		s.sendJSON(client, Ack{Type: "create_session_ack", Error: "already in a session"})
		return
	}
	sess := s.Sessions.Create(client.id, msg.PlayerName)
	client.setSessionCode(sess.Code)
	s.Logger.Infof("player %s created session %s", client.id, sess.Code)
	s.sendJSON(client, Ack{Type: "create_session_ack", Success: true, SessionCode: sess.Code})
	s.broadcastState(sess)
}

func (s *Server) handleJoin(client *conn, msg Message) {
	if client.sessionCode() != "" {
		s.sendJSON(client, Ack{Type: "join_session_ack", Error: "already in a session"})
		return
	}
	sess, ok := s.session(msg.SessionCode)
	if !ok {
		s.sendJSON(client, Ack{Type: "join_session_ack", Error: game.ErrSessionNotFound.Error()})
		return
	}
	if err := sess.AddPlayer(client.id, msg.PlayerName); err != nil {
		s.sendJSON(client, Ack{Type: "join_session_ack", Error: err.Error()})
		return
	}
	client.setSessionCode(sess.Code)
	s.Logger.Infof("player %s joined session %s", client.id, sess.Code)
	s.sendJSON(client, Ack{Type: "join_session_ack", Success: true, SessionCode: sess.Code})
	s.broadcastState(sess)
}

// handleDisconnect removes the player from their session, destroys the
// session when its roster empties, and refreshes everyone else otherwise.
// The engine itself renormalizes the round (forced waiting under three
// players, czar index maintenance).
func (s *Server) handleDisconnect(client *conn) {
	s.unregister(client.id)

	code := client.sessionCode()
	if code == "" {
		return
	}
	sess, ok := s.Sessions.Get(code)
	if !ok {
		return
	}
	if !sess.RemovePlayer(client.id) {
		return
	}
	if sess.PlayerCount() == 0 {
		s.Sessions.Delete(code)
		s.Logger.Infof("session %s destroyed", code)
		return
	}
	s.broadcastState(sess)
}

// session normalizes the shareable code and looks the session up.
func (s *Server) session(code string) (*game.Session, bool) {
	return s.Sessions.Get(strings.ToUpper(strings.TrimSpace(code)))
}

// resolveWinner maps the czar's selection onto a submitting player id. The
// preferred form is the opaque submission token handed out at judging entry;
// a raw player id is also accepted once the reveal has happened.
func resolveWinner(sess *game.Session, msg Message) (uuid.UUID, bool) {
	if msg.SubmissionID != "" {
		token, err := uuid.Parse(msg.SubmissionID)
		if err != nil {
			return uuid.Nil, false
		}
		return sess.SubmissionPlayer(token)
	}
	if msg.PlayerID != "" {
		id, err := uuid.Parse(msg.PlayerID)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
	return uuid.Nil, false
}
