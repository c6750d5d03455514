package settings

import (
	"context"
	"sync"

	"SSAAM-Backend/src/models"
)

type MemoryStore struct {
	mu       sync.Mutex
	settings *models.Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	return m.Update(ctx, nil, nil)
}

func (m *MemoryStore) Update(_ context.Context, register *models.RegisterSetting, login *models.LoginSetting) (*models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settings == nil {
		d := models.DefaultSettings()
		m.settings = &d
	}
	if register != nil {
		m.settings.UserRegister = *register
	}
	if login != nil {
		m.settings.UserLogin = *login
	}
	out := *m.settings
	return &out, nil
}
