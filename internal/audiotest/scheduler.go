// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sort"
	"sync"

	"github.com/ik5/wavescope/render"
)

// Scheduler is a render.Scheduler driven by hand: callbacks only run when
// a test calls Step.
type Scheduler struct {
	mu      sync.Mutex
	next    render.Handle
	pending map[render.Handle]func()
	total   int
}

var _ render.Scheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[render.Handle]func())}
}

func (s *Scheduler) Schedule(fn func()) render.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.total++
	s.pending[s.next] = fn
	return s.next
}

func (s *Scheduler) Cancel(h render.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, h)
}

// Pending returns the number of outstanding callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Scheduled returns how many callbacks were ever scheduled.
func (s *Scheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.total
}

// Step runs the callbacks outstanding at the time of the call, oldest
// first, and returns how many ran. Callbacks they schedule wait for the
// next Step.
func (s *Scheduler) Step() int {
	s.mu.Lock()
	handles := make([]render.Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	s.mu.Unlock()

	ran := 0
	for _, h := range handles {
		s.mu.Lock()
		fn, ok := s.pending[h]
		delete(s.pending, h)
		s.mu.Unlock()

		if ok {
			fn()
			ran++
		}
	}
	return ran
}
