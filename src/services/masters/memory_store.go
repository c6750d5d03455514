package masters

import (
	"context"
	"sync"

	"SSAAM-Backend/src/models"
)

type MemoryStore struct {
	mu      sync.RWMutex
	masters []models.Master
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Create(_ context.Context, master *models.Master) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.masters {
		if existing.Username == master.Username {
			return ErrUsernameTaken
		}
	}
	m.masters = append(m.masters, *master)
	return nil
}

func (m *MemoryStore) FindByUsername(_ context.Context, username string) (*models.Master, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, existing := range m.masters {
		if existing.Username == username {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrMasterNotFound
}

func (m *MemoryStore) List(_ context.Context) ([]models.Master, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Master, len(m.masters))
	copy(out, m.masters)
	return out, nil
}
