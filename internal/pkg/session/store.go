// internal/pkg/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("session: key not found")

// Store is a JSON key-value store scoped to browser sessions.
// Implementations: MemoryStore here and the Redis client in infrastructure/database/redis.
type Store interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Key builds a namespaced storage key, e.g. Key("cart", id) -> "cart:session:<id>"
func Key(namespace, sessionID string) string {
	return fmt.Sprintf("%s:session:%s", namespace, sessionID)
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// sweepInterval bounds how often SetJSON scans for expired entries
const sweepInterval = time.Minute

// MemoryStore keeps values in process memory. Values are stored encoded so
// callers never share references with the store. Expired entries are dropped
// when read and by a sweep that runs on writes at most once per sweepInterval.
type MemoryStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:   make(map[string]memoryEntry),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// GetJSON decodes the value stored at key into dest
func (m *MemoryStore) GetJSON(_ context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if m.expired(entry) {
		m.mu.Lock()
		if current, ok := m.entries[key]; ok && m.expired(current) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return ErrNotFound
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it at key. A zero ttl never expires.
func (m *MemoryStore) SetJSON(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	now := m.now()
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > sweepInterval {
		for k, e := range m.entries {
			if m.expired(e) {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	m.entries[key] = entry
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Ping always succeeds for the memory store
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// size returns the number of entries held, including expired ones not yet swept
func (m *MemoryStore) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}
