package tokenstore

import "sync"

// MemoryStore keeps the token in process memory only. Useful for tests and
// for hosts that handle persistence themselves.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	held  bool
}

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.held {
		return "", ErrNotFound
	}
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.held = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.held = false
	return nil
}
