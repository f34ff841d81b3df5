// Package memory is an in-memory storage for cached responses.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content    []byte
	expiration time.Time
}

// Storage keeps content until it expires.
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
	now   func() time.Time
}

// NewStorage returns an empty storage.
func NewStorage() *Storage {
	return &Storage{
		items: map[string]item{},
		now:   time.Now,
	}
}

// Get returns content by the key. It returns nil when the content is missing or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if !s.now().Before(v.expiration) {
		s.mu.Lock()
		if v, ok := s.items[key]; ok && !s.now().Before(v.expiration) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil
	}

	return v.content
}

// Set puts the content for the duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = item{
		content:    content,
		expiration: s.now().Add(duration),
	}
}
