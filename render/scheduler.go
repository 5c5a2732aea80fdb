// SPDX-License-Identifier: EPL-2.0

package render

import (
	"sync"
	"time"
)

const DefaultFPS = 60

// Handle identifies one scheduled callback. The zero Handle is never
// issued.
type Handle uint64

// Scheduler runs callbacks once, at the host's next frame. Schedule must
// not call fn before returning.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// Ticker is a Scheduler paced by a fixed frame interval.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	next     Handle
	timers   map[Handle]*time.Timer
}

// NewTicker paces frames at fps; non-positive values use DefaultFPS.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Ticker{
		interval: time.Second / time.Duration(fps),
		timers:   make(map[Handle]*time.Timer),
	}
}

func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) Schedule(fn func()) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	t.timers[h] = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		_, live := t.timers[h]
		delete(t.timers, h)
		t.mu.Unlock()

		if live {
			fn()
		}
	})

	return h
}

func (t *Ticker) Cancel(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tm, ok := t.timers[h]; ok {
		tm.Stop()
		delete(t.timers, h)
	}
}

// Pending returns the number of callbacks that are scheduled and not yet
// run or cancelled.
func (t *Ticker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.timers)
}
