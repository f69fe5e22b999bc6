package coaching

import (
	"sync"
	"time"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/pkg/metrics"
	"github.com/opsvue/performance-coach-api/pkg/utils"
)

const defaultMaxMessages = 20

// sessionStore keeps chat transcripts in memory. Transcripts are capped to
// the newest maxMessages entries; callers always receive copies.
type sessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*domain.ChatSession
	maxMessages int
}

func newSessionStore(maxMessages int) *sessionStore {
	if maxMessages <= 0 {
		maxMessages = defaultMaxMessages
	}

	return &sessionStore{
		sessions:    make(map[string]*domain.ChatSession),
		maxMessages: maxMessages,
	}
}

func (st *sessionStore) create() (*domain.ChatSession, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.ChatSession{ID: id, CreatedAt: now, UpdatedAt: now}

	st.mu.Lock()
	st.sessions[id] = session
	size := len(st.sessions)
	st.mu.Unlock()

	metrics.ChatSessionsActive.Set(float64(size))

	return copySession(session), nil
}

func (st *sessionStore) get(id string) (*domain.ChatSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, false
	}

	return copySession(session), true
}

// append adds messages to a session, dropping the oldest entries once the
// transcript exceeds the cap
func (st *sessionStore) append(id string, messages ...domain.ChatMessage) (*domain.ChatSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, false
	}

	session.Messages = append(session.Messages, messages...)
	if len(session.Messages) > st.maxMessages {
		session.Messages = append([]domain.ChatMessage(nil), session.Messages[len(session.Messages)-st.maxMessages:]...)
	}
	session.UpdatedAt = time.Now().UTC()

	return copySession(session), true
}

func (st *sessionStore) delete(id string) bool {
	st.mu.Lock()
	_, ok := st.sessions[id]
	if ok {
		delete(st.sessions, id)
	}
	size := len(st.sessions)
	st.mu.Unlock()

	if ok {
		metrics.ChatSessionsActive.Set(float64(size))
	}

	return ok
}

func copySession(session *domain.ChatSession) *domain.ChatSession {
	copied := *session
	copied.Messages = append([]domain.ChatMessage(nil), session.Messages...)
	return &copied
}
