package assetstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local experiments. It
// tracks which references are live so lifecycle tests can assert that entity
// deletion leaves nothing behind.
type MemoryStore struct {
	mu      sync.Mutex
	seq     int
	objects map[string][]byte

	// FailPut and FailDelete force the next matching operation to fail.
	FailPut    bool
	FailDelete map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects:    make(map[string][]byte),
		FailDelete: make(map[string]bool),
	}
}

func (s *MemoryStore) Put(_ context.Context, folder string, up Upload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPut {
		return "", fmt.Errorf("memory store: put failed")
	}
	s.seq++
	ref := fmt.Sprintf("%s/%d%s", folder, s.seq, extForMime(up.ContentType))
	s.objects[ref] = up.Data
	return ref, nil
}

func (s *MemoryStore) Delete(_ context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDelete[ref] {
		return fmt.Errorf("memory store: delete %s failed", ref)
	}
	if _, ok := s.objects[ref]; !ok {
		return fmt.Errorf("memory store: %s not found", ref)
	}
	delete(s.objects, ref)
	return nil
}

// Seed registers a reference as if it had been stored earlier.
func (s *MemoryStore) Seed(refs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ref := range refs {
		s.objects[ref] = nil
	}
}

func (s *MemoryStore) Exists(ref string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[ref]
	return ok
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
