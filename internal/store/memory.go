package store

import (
	"context"
	"sync"
	"time"

	"attentionops/backend/internal/mission"
)

// MemoryStore keeps missions for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	now     func() time.Time
	count   int64
	current *mission.Mission
	history []mission.Mission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, draft mission.Draft) (mission.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	record := mission.NewMission(draft, s.count, s.now())
	s.history = append(s.history, record)
	current := record
	s.current = &current
	return record, nil
}

func (s *MemoryStore) Current(_ context.Context) (*mission.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, nil
	}
	record := *s.current
	return &record, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.count), nil
}

func (s *MemoryStore) History(_ context.Context, limit int) ([]mission.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.history)
	if limit <= 0 || limit > total {
		limit = total
	}
	out := make([]mission.Mission, 0, limit)
	for idx := total - 1; idx >= total-limit; idx-- {
		out = append(out, s.history[idx])
	}
	return out, nil
}
