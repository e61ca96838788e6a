package prefs

import (
	"context"
	"sync"

	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/storage"

	"github.com/bytedance/sonic"
)

// StorageKey names the persisted preference entry.
const StorageKey = "ui-storage"

// Theme values accepted by the console.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Preferences is the durable slice of UI state. Notifications live in
// their own store and are deliberately left out of the persisted form.
type Preferences struct {
	Theme       string `json:"theme"`
	SidebarOpen bool   `json:"sidebarOpen"`
}

// Store persists display preferences across reloads.
type Store struct {
	mutex sync.RWMutex
	prefs Preferences
	kv    storage.KV
}

// NewStore builds a preference store with system-theme defaults.
func NewStore(kv storage.KV) *Store {
	return &Store{
		prefs: Preferences{Theme: ThemeSystem},
		kv:    kv,
	}
}

// Rehydrate restores persisted preferences; missing or unparsable
// entries keep the defaults.
func (s *Store) Rehydrate(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(errors.KindStorage, "prefs.rehydrate", "failed to read preference entry", err)
	}

	var prefs Preferences
	if err := sonic.Unmarshal(raw, &prefs); err != nil {
		return nil
	}
	if prefs.Theme == "" {
		prefs.Theme = ThemeSystem
	}

	s.mutex.Lock()
	s.prefs = prefs
	s.mutex.Unlock()
	return nil
}

// SetTheme persists the chosen theme.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return errors.New(errors.KindValidation, "prefs.set_theme", "unknown theme: "+theme)
	}

	s.mutex.Lock()
	s.prefs.Theme = theme
	current := s.prefs
	s.mutex.Unlock()

	return s.persist(ctx, current)
}

// SetSidebarOpen persists the sidebar state.
func (s *Store) SetSidebarOpen(ctx context.Context, open bool) error {
	s.mutex.Lock()
	s.prefs.SidebarOpen = open
	current := s.prefs
	s.mutex.Unlock()

	return s.persist(ctx, current)
}

// Preferences returns the current values.
func (s *Store) Preferences() Preferences {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.prefs
}

func (s *Store) persist(ctx context.Context, prefs Preferences) error {
	raw, err := sonic.Marshal(prefs)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "prefs.persist", "failed to serialize preferences", err)
	}
	if err := s.kv.Put(ctx, StorageKey, raw); err != nil {
		return errors.Wrap(errors.KindStorage, "prefs.persist", "failed to write preference entry", err)
	}
	return nil
}
