package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification kinds surfaced to the user.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
	KindInfo    = "info"
)

// DefaultTTL is how long a notification lives once pushed.
const DefaultTTL = 5 * time.Second

// Notification is a transient user-facing message. Never persisted.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}

// Store holds the live notifications. Each entry self-destructs after
// the configured TTL whether or not anything rendered it.
type Store struct {
	mutex  sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	ttl    time.Duration
}

// NewStore builds a notification store. A non-positive ttl falls back
// to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		timers: make(map[string]*time.Timer),
		ttl:    ttl,
	}
}

// Push appends a notification and schedules its removal.
func (s *Store) Push(kind, title, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	s.mutex.Lock()
	s.items = append(s.items, n)
	s.timers[n.ID] = time.AfterFunc(s.ttl, func() {
		s.Dismiss(n.ID)
	})
	s.mutex.Unlock()

	return n
}

// Dismiss removes the notification immediately. Safe to call after the
// expiry timer already fired, or twice.
func (s *Store) Dismiss(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
}

// Clear empties the list unconditionally and cancels pending timers.
func (s *Store) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.items = nil
}

// Active returns a copy of the live notifications.
func (s *Store) Active() []Notification {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]Notification(nil), s.items...)
}
