package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDs is a deterministic domain.IDGenerator that issues
// "<prefix>-1", "<prefix>-2", ...
type SequenceIDs struct {
	Prefix string

	mu sync.Mutex
	n  int
}

func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{Prefix: prefix}
}

func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
