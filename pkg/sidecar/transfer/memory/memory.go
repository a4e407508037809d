package memory

import (
	"context"
	"path"
	"sync"

	"github.com/meemoo/sidecar-creator/pkg/sidecar/transfer"
)

var _ transfer.Sink = (*Sink)(nil)

// Sink is an in-memory transfer sink, mainly for testing.
type Sink struct {
	mu   sync.RWMutex
	puts map[string][]byte
}

// New creates a new in-memory transfer sink
func New() *Sink {
	return &Sink{puts: make(map[string][]byte)}
}

// Put stores content under dir/filename.
func (s *Sink) Put(ctx context.Context, content []byte, dir, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	s.puts[path.Join(dir, filename)] = stored
	return nil
}

// Get returns the content stored under dir/filename.
func (s *Sink) Get(dir, filename string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.puts[path.Join(dir, filename)]
	return content, ok
}

// Len returns the number of stored payloads.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.puts)
}
