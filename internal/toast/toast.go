// Package toast implements transient user notifications: at most one visible
// at a time, a new toast replaces the old, and each expires on its own after
// a fixed interval.
package toast

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// DefaultTTL matches the auto-dismiss interval used across every screen.
const DefaultTTL = 3 * time.Second

// Message is one notification. Expired messages are simply not returned;
// nothing stores them.
type Message struct {
	Text      string
	Kind      Kind
	ExpiresAt time.Time
}

// Manager owns the single toast slot. Safe for concurrent use; background
// action confirmations may replace a toast from another goroutine.
type Manager struct {
	mu      sync.Mutex
	current *Message
	ttl     time.Duration
	now     func() time.Time
}

// NewManager returns a Manager with DefaultTTL. now may be nil, in which
// case time.Now is used; tests inject their own clock.
func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{ttl: DefaultTTL, now: now}
}

// Show replaces the visible toast. It never queues.
func (m *Manager) Show(text string, kind Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &Message{Text: text, Kind: kind, ExpiresAt: m.now().Add(m.ttl)}
}

// Active returns the visible toast, or nil when none is showing or the last
// one has expired.
func (m *Manager) Active() *Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || !m.now().Before(m.current.ExpiresAt) {
		m.current = nil
		return nil
	}
	msg := *m.current
	return &msg
}

// Take returns the visible toast like Active and clears the slot, so a
// caller that prints toasts sees each one exactly once.
func (m *Manager) Take() *Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || !m.now().Before(m.current.ExpiresAt) {
		m.current = nil
		return nil
	}
	msg := *m.current
	m.current = nil
	return &msg
}
