// SPDX-License-Identifier: EPL-2.0

package render

import "sync"

// State of a Loop.
type State int

const (
	Stopped State = iota
	Scheduled
)

func (s State) String() string {
	if s == Scheduled {
		return "Scheduled"
	}
	return "Stopped"
}

// FrameFunc draws one frame. Returning false stops the loop.
type FrameFunc func() bool

// Loop is a self-rescheduling frame task with at most one callback
// outstanding.
type Loop struct {
	mu     sync.Mutex
	sched  Scheduler
	state  State
	handle Handle
	frame  FrameFunc
	// gen changes on every Start and Stop; callbacks from an older
	// generation are ignored.
	gen    uint64
	frames uint64
}

func NewLoop(s Scheduler) *Loop {
	return &Loop{sched: s}
}

// Start schedules frame for the next frame, replacing whatever the loop
// was running.
func (l *Loop) Start(frame FrameFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancelLocked()
	l.gen++
	l.frame = frame
	l.state = Scheduled
	l.scheduleLocked(l.gen)
}

// Stop cancels the pending frame. A frame already running finishes but is
// not rescheduled. Stop on a stopped loop does nothing.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Stopped {
		return
	}
	l.cancelLocked()
	l.gen++
	l.frame = nil
	l.state = Stopped
}

func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Pending reports whether a frame callback is outstanding.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.handle != 0
}

// Frames returns how many frames completed and asked to continue.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.frames
}

func (l *Loop) scheduleLocked(gen uint64) {
	l.handle = l.sched.Schedule(func() { l.tick(gen) })
}

func (l *Loop) cancelLocked() {
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
}

func (l *Loop) tick(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.state != Scheduled {
		l.mu.Unlock()
		return
	}
	l.handle = 0
	frame := l.frame
	l.mu.Unlock()

	more := frame()

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || l.state != Scheduled {
		return
	}
	if !more {
		l.gen++
		l.frame = nil
		l.state = Stopped
		return
	}
	l.frames++
	l.scheduleLocked(gen)
}
