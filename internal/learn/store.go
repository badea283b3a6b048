package learn

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrFeedNotFound = errors.New("feed not found")

type Store interface {
	Put(f *Feed)
	Get(id uuid.UUID) (*Feed, error)
	Delete(id uuid.UUID)
}

type memoryStore struct {
	mu    sync.RWMutex
	feeds map[uuid.UUID]*Feed
}

func NewInMemoryStore() Store {
	return &memoryStore{feeds: map[uuid.UUID]*Feed{}}
}

func (m *memoryStore) Put(f *Feed) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feeds[f.ID] = f
}

func (m *memoryStore) Get(id uuid.UUID) (*Feed, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.feeds[id]
	if !ok {
		return nil, ErrFeedNotFound
	}
	return f, nil
}

func (m *memoryStore) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.feeds, id)
}
