package storage

import (
	"context"
	"sync"
)

type memoryKV struct {
	items map[string][]byte
	mutex sync.RWMutex
}

// NewMemory builds an in-memory KV store. State is lost on close, which
// matches a browser session with persistence disabled.
func NewMemory() KV {
	return &memoryKV{
		items: make(map[string][]byte),
	}
}

func (s *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	value, ok := s.items[key]
	s.mutex.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryKV) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mutex.Lock()
	s.items[key] = stored
	s.mutex.Unlock()
	return nil
}

func (s *memoryKV) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	delete(s.items, key)
	s.mutex.Unlock()
	return nil
}

func (s *memoryKV) Keys(_ context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *memoryKV) Close(_ context.Context) error {
	return nil
}
