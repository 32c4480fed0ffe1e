package session

import (
	"sync"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

// MemoryStore holds sessions in process memory. Sessions have no expiry;
// they live until the order is recorded or the process restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	locks    map[string]*sync.Mutex
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (m *MemoryStore) Get(sender string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[sender]
	return sess, ok
}

func (m *MemoryStore) Upsert(sender string, sess *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sender] = sess
}

func (m *MemoryStore) Remove(sender string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sender)
}

// LockSender hands out one mutex per sender. Lock entries are kept after
// the session is removed; the table is bounded by the number of distinct
// senders seen by this process.
func (m *MemoryStore) LockSender(sender string) func() {
	m.mu.Lock()
	l, ok := m.locks[sender]
	if !ok {
		l = &sync.Mutex{}
		m.locks[sender] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
