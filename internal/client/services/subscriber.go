package services

import (
	"sync"

	"github.com/dmitrijs2005/netops/internal/client/models"
)

// subscriber is an unbounded FIFO of snapshots for one observer, so the
// writer never blocks on a slow reader.
type subscriber struct {
	mu      sync.Mutex
	pending []models.UiState
	signal  chan struct{} // buffered, size 1; coalesces wakeups
}

func newSubscriber() *subscriber {
	return &subscriber{signal: make(chan struct{}, 1)}
}

func (s *subscriber) push(st models.UiState) {
	s.mu.Lock()
	s.pending = append(s.pending, st)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscriber) pop() (models.UiState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return models.UiState{}, false
	}
	st := s.pending[0]
	s.pending[0] = models.UiState{}
	s.pending = s.pending[1:]
	if len(s.pending) == 0 {
		s.pending = nil
	}
	return st, true
}
