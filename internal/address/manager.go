package address

import (
	"fmt"
	"log/slog"
)

// Store is the persistence the Manager needs. *storage.Store satisfies it.
type Store interface {
	LoadAddress() (string, bool, error)
	SaveAddress(addr string) error
}

// Manager ties address generation to persistence: every address it hands out
// has been saved.
type Manager struct {
	store Store
}

// NewManager creates a Manager backed by store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Load returns the persisted address. ok is false when none is stored.
// A stored record that no longer validates is treated as an error.
func (m *Manager) Load() (addr Address, ok bool, err error) {
	raw, ok, err := m.store.LoadAddress()
	if err != nil || !ok {
		return Address{}, false, err
	}

	addr, err = Validate(raw)
	if err != nil {
		return Address{}, false, fmt.Errorf("stored address: %w", err)
	}
	return addr, true, nil
}

// Generate creates a new address and persists it. An empty custom string
// produces a random address; anything else is validated first.
func (m *Manager) Generate(custom string) (Address, error) {
	var (
		addr Address
		err  error
	)

	if custom == "" {
		addr, err = GenerateRandom()
	} else {
		addr, err = Validate(custom)
	}
	if err != nil {
		return Address{}, err
	}

	if err := m.store.SaveAddress(addr.String()); err != nil {
		return Address{}, err
	}

	slog.Debug("generated address", "address", addr.String(), "custom", custom != "")
	return addr, nil
}

// Resolve returns the persisted address, generating and saving a random one
// when none exists yet.
func (m *Manager) Resolve() (Address, error) {
	addr, ok, err := m.Load()
	if err != nil {
		return Address{}, err
	}
	if ok {
		return addr, nil
	}
	return m.Generate("")
}
