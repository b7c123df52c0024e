package serviceImp

import (
	"sync"
	"time"
)

// saver coalesces bursts of mutations into one write: each Schedule resets
// the timer, and the callback reads current store state when it finally
// fires, never a snapshot from scheduling time.
type saver struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

func newSaver(delay time.Duration, fn func()) *saver {
	return &saver{delay: delay, fn: fn}
}

func (s *saver) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *saver) fire() {
	s.mu.Lock()
	s.timer = nil
	s.mu.Unlock()
	s.fn()
}

// Flush runs a pending write now, if any.
func (s *saver) Flush() {
	s.mu.Lock()
	pending := s.timer != nil
	if pending {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	if pending {
		s.fn()
	}
}

// Cancel drops a pending write without running it.
func (s *saver) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
