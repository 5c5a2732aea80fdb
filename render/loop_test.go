// SPDX-License-Identifier: EPL-2.0

package render_test

import (
	"testing"

	"github.com/ik5/wavescope/internal/audiotest"
	"github.com/ik5/wavescope/render"
)

func TestLoop_StartsStopped(t *testing.T) {
	t.Parallel()

	l := render.NewLoop(audiotest.NewScheduler())
	if l.State() != render.Stopped || l.Pending() {
		t.Errorf("new loop state = %v, pending = %v", l.State(), l.Pending())
	}
}

func TestLoop_Reschedules(t *testing.T) {
	t.Parallel()

	s := audiotest.NewScheduler()
	l := render.NewLoop(s)

	frames := 0
	l.Start(func() bool { frames++; return true })

	if frames != 0 {
		t.Fatal("frame ran synchronously in Start")
	}
	for range 5 {
		if s.Pending() != 1 {
			t.Fatalf("pending = %d, want 1", s.Pending())
		}
		s.Step()
	}

	if frames != 5 || l.Frames() != 5 {
		t.Errorf("frames = %d (loop says %d), want 5", frames, l.Frames())
	}
	if l.State() != render.Scheduled {
		t.Errorf("State() = %v, want Scheduled", l.State())
	}
}

func TestLoop_FalseStops(t *testing.T) {
	t.Parallel()

	s := audiotest.NewScheduler()
	l := render.NewLoop(s)
	l.Start(func() bool { return false })
	s.Step()

	if l.State() != render.Stopped || s.Pending() != 0 || l.Pending() {
		t.Errorf("after false frame: state %v, scheduler pending %d", l.State(), s.Pending())
	}
}

func TestLoop_RestartKeepsOneOutstanding(t *testing.T) {
	t.Parallel()

	s := audiotest.NewScheduler()
	l := render.NewLoop(s)

	var ran []int
	for i := range 4 {
		l.Start(func() bool { ran = append(ran, i); return true })
		if s.Pending() != 1 {
			t.Fatalf("after Start #%d pending = %d, want 1", i, s.Pending())
		}
	}

	s.Step()
	if len(ran) != 1 || ran[0] != 3 {
		t.Errorf("ran %v, want only the last frame func", ran)
	}
}

func TestLoop_StopCancelsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	s := audiotest.NewScheduler()
	l := render.NewLoop(s)

	ran := false
	l.Start(func() bool { ran = true; return true })
	l.Stop()
	l.Stop()

	if s.Step() != 0 || ran {
		t.Error("frame ran after Stop")
	}
	if l.State() != render.Stopped || l.Pending() {
		t.Errorf("state %v, pending %v; want Stopped, false", l.State(), l.Pending())
	}

	// Stop on a never-started loop is also fine.
	render.NewLoop(s).Stop()
}

func TestLoop_StopDuringFrame(t *testing.T) {
	t.Parallel()

	s := audiotest.NewScheduler()
	l := render.NewLoop(s)

	l.Start(func() bool {
		l.Stop()
		return true
	})
	s.Step()

	if s.Pending() != 0 || l.State() != render.Stopped {
		t.Errorf("frame in flight rescheduled after Stop: pending %d, state %v", s.Pending(), l.State())
	}
}

func TestLoop_RestartDuringFrame(t *testing.T) {
	t.Parallel()

	s := audiotest.NewScheduler()
	l := render.NewLoop(s)

	second := 0
	l.Start(func() bool {
		l.Start(func() bool { second++; return true })
		return true
	})
	s.Step()

	if s.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", s.Pending())
	}
	s.Step()
	if second != 1 {
		t.Errorf("second frame func ran %d times, want 1", second)
	}
}
