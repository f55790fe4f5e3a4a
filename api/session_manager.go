package api

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aokblast/sicxeasm/config"
	"github.com/aokblast/sicxeasm/service"
)

// ErrSessionNotFound is returned when a session ID has no stored
// session.
var ErrSessionNotFound = errors.New("session not found")

// sessionManager stores assembled sessions in memory, keyed by ID, and
// broadcasts each session's per-expression progress as it assembles.
type sessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*service.Session
	broadcaster *Broadcaster
}

func newSessionManager(broadcaster *Broadcaster) *sessionManager {
	return &sessionManager{
		sessions:    make(map[string]*service.Session),
		broadcaster: broadcaster,
	}
}

// Create assembles source under filename, broadcasting a progress
// event per expression and a terminal done/error event, then stores
// the resulting session for later lookup.
func (sm *sessionManager) Create(source []byte, filename string, cfg *config.Config) (*service.Session, error) {
	id, err := service.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	onProgress := func(line int, address uint32, hex string) {
		sm.broadcaster.Broadcast(BroadcastEvent{
			Type:      EventProgress,
			SessionID: id,
			Line:      line,
			Address:   fmt.Sprintf("%06X", address),
			Hex:       hex,
		})
	}

	sess, err := service.NewSessionWithID(id, source, filename, cfg, onProgress)
	if err != nil {
		sm.broadcaster.Broadcast(BroadcastEvent{Type: EventError, SessionID: id, Message: err.Error()})
		return nil, err
	}
	sm.broadcaster.Broadcast(BroadcastEvent{Type: EventDone, SessionID: id})

	sm.mu.Lock()
	sm.sessions[sess.ID] = sess
	sm.mu.Unlock()

	return sess, nil
}

// Get retrieves a stored session by ID.
func (sm *sessionManager) Get(id string) (*service.Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	sess, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
