package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps a sliding log of hit times per key in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{hits: make(map[string][]time.Time), now: time.Now}
}

func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-window)

	entries := s.hits[key]
	i := 0
	for i < len(entries) && !entries[i].After(cutoff) {
		i++
	}
	entries = entries[i:]

	if len(entries) >= limit {
		s.hits[key] = entries
		return false, 0, nil
	}

	entries = append(entries, now)
	s.hits[key] = entries
	return true, limit - len(entries), nil
}

// Sweep drops keys whose hits all fall outside window.
func (s *MemoryStore) Sweep(window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-window)
	removed := 0
	for key, entries := range s.hits {
		if len(entries) == 0 || !entries[len(entries)-1].After(cutoff) {
			delete(s.hits, key)
			removed++
		}
	}
	return removed
}
