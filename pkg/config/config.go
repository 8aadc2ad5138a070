package config

import (
	"context"
	"sync"

	"github.com/blueelliott/singular-controls/pkg/db"
)

// Manager holds the live settings and writes changes through to the
// store. Readers get value copies, so a settings update never races a
// request that is mid-flight.
type Manager struct {
	store db.SettingsStore

	mu  sync.RWMutex
	cur db.Settings
}

// Load reads the persisted settings and returns a Manager around them.
func Load(ctx context.Context, store db.SettingsStore) (*Manager, error) {
	cur, err := store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, cur: *cur}, nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() db.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// SingularToken returns the current control app token. Handed to the
// Singular client as a provider func so token updates apply immediately.
func (m *Manager) SingularToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur.SingularToken
}

// Update applies fn to a copy of the settings, persists the result, and
// publishes it as the live value. The live value is untouched when
// persistence fails.
func (m *Manager) Update(ctx context.Context, fn func(*db.Settings)) (db.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.cur
	fn(&next)
	if err := m.store.Save(ctx, &next); err != nil {
		return m.cur, err
	}
	m.cur = next
	return next, nil
}
