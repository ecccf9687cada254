// internal/game/session_store.go
package game

import (
	"crypto/rand"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is surfaced in join acknowledgements for unknown codes.
var ErrSessionNotFound = errors.New("session not found")

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// SessionStore is the process-wide directory from session code to live
// Session. It is the only cross-session shared resource; all map access is
// serialized by one mutex, while per-session state stays behind each
// Session's own lock.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore returns an empty in-memory directory.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create allocates a session under a fresh shareable code and seats the
// creating player as its first roster member.
func (st *SessionStore) Create(hostID uuid.UUID, hostName string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	code := st.newCode()
	sess := NewSession(code)
	_ = sess.AddPlayer(hostID, hostName) // an empty session cannot be full
	st.sessions[code] = sess
	return sess
}

// Get looks up a live session by code.
func (st *SessionStore) Get(code string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[code]
	return s, ok
}

// Delete discards a session. Called by the transport glue the moment a
// session's roster empties.
func (st *SessionStore) Delete(code string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, code)
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// newCode draws random uppercase alphanumeric codes until one misses the
// live set. Caller holds mu.
func (st *SessionStore) newCode() string {
	buf := make([]byte, codeLength)
	code := make([]byte, codeLength)
	for {
		if _, err := rand.Read(buf); err != nil {
			panic(err) // crypto/rand failure is not recoverable
		}
		for i, b := range buf {
			code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
		}
		if _, taken := st.sessions[string(code)]; !taken {
			return string(code)
		}
	}
}
