package quiz

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store guarda as sessões ativas. Só o mapa é protegido: cada sessão em si é
// operada por um único chamador por vez, como exige o modelo de concorrência
// do motor.
type Store interface {
	Put(s *Session)
	Get(id uuid.UUID) (*Session, error)
	Delete(id uuid.UUID)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewInMemoryStore() Store {
	return &memoryStore{sessions: map[uuid.UUID]*Session{}}
}

func (m *memoryStore) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

func (m *memoryStore) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *memoryStore) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
