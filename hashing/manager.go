package hashing

import (
	"fmt"
	"sync"
)

// Manager holds a registry of hashing drivers and dispatches to them.
// Make uses the configured default driver; Check and NeedsRehash pick the
// driver by sniffing the hash prefix, so hashes made under an old default
// keep verifying after the default changes.
type Manager struct {
	mu            sync.RWMutex
	drivers       map[DriverName]Hasher
	defaultDriver DriverName
}

// NewManager constructs an empty Manager with the given default driver
// name. A driver under that name must be registered before Make is called.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers:       make(map[DriverName]Hasher),
		defaultDriver: defaultDriver,
	}
}

// NewDefaultManager returns a Manager with the bcrypt and Argon2id drivers
// registered under their default parameters, defaulting to Argon2id.
func NewDefaultManager() *Manager {
	m := NewManager(DriverArgon2id)
	m.RegisterDriver(DefaultBcryptHasher())
	m.RegisterDriver(DefaultArgon2idHasher())
	return m
}

// RegisterDriver adds or replaces a driver under its own name.
func (m *Manager) RegisterDriver(h Hasher) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[h.Driver()] = h
	return m
}

// Driver returns the registered hasher for name, or the default driver's
// hasher when name is omitted.
func (m *Manager) Driver(name ...DriverName) (Hasher, error) {
	target := m.defaultDriver
	if len(name) > 0 {
		target = name[0]
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, target)
	}
	return h, nil
}

// Make hashes password with the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.Driver()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the driver that produced the
// hash, regardless of the current default.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.driverFor(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be regenerated. A hash produced
// by a driver other than the default always needs rehashing; otherwise the
// default driver compares its parameters against the hash.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	def, err := m.Driver()
	if err != nil {
		return false, err
	}
	d, ok := DetectDriver(hash)
	if !ok {
		return false, fmt.Errorf("%w: unrecognised hash format", ErrInvalidHash)
	}
	if d != def.Driver() {
		return true, nil
	}
	return def.NeedsRehash(hash)
}

func (m *Manager) driverFor(hash string) (Hasher, error) {
	d, ok := DetectDriver(hash)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognised hash format", ErrInvalidHash)
	}
	return m.Driver(d)
}
