package persistence

import (
	"context"
	"sync"
)

// MemoryStore là variant cho demo mode và tests. Snapshot mất khi
// process exit - với demo mode thì chấp nhận được.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot string
	present  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, snapshot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.present = true
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.present, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = ""
	s.present = false
	return nil
}
