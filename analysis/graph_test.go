// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"testing"

	"github.com/ik5/wavescope/playback"
)

// fakeConnector stands in for a playback source.
type fakeConnector struct {
	proc        playback.Processor
	connects    int
	disconnects int
}

func (f *fakeConnector) Connect(p playback.Processor) {
	f.connects++
	f.proc = p
}

func (f *fakeConnector) Disconnect() {
	f.disconnects++
	f.proc = nil
}

func TestGraph_NotReady(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(DefaultWindowSize)
	if err != nil {
		t.Fatal(err)
	}
	if g.Ready() {
		t.Error("Ready() = true before Attach")
	}
	if _, err := g.Sample(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Sample() error = %v, want ErrNotReady", err)
	}
}

func TestGraph_DefaultFrameSize(t *testing.T) {
	t.Parallel()

	g, _ := NewGraph(DefaultWindowSize)
	if err := g.Attach(&fakeConnector{}); err != nil {
		t.Fatal(err)
	}

	frame, err := g.Sample()
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(frame) != 256 {
		t.Errorf("len(frame) = %d, want 256", len(frame))
	}
}

func TestGraph_SampleSeesProcessedAudio(t *testing.T) {
	t.Parallel()

	src := &fakeConnector{}
	g, _ := NewGraph(64)
	_ = g.Attach(src)

	loud := make([]float32, 64)
	for i := range loud {
		loud[i] = 1
	}
	src.proc.Process(loud)

	frame, _ := g.Sample()
	for i, v := range frame {
		if v != 255 {
			t.Fatalf("frame[%d] = %d, want 255", i, v)
		}
	}

	// Frames are fresh copies.
	frame[0] = 0
	again, _ := g.Sample()
	if again[0] != 255 {
		t.Error("Sample() returned shared storage")
	}
}

func TestGraph_ReattachDisconnectsFirst(t *testing.T) {
	t.Parallel()

	a, b := &fakeConnector{}, &fakeConnector{}
	g, _ := NewGraph(64)
	_ = g.Attach(a)
	first := a.proc

	_ = g.Attach(b)
	if a.disconnects != 1 || a.proc != nil {
		t.Errorf("old source disconnects = %d, proc = %v; want 1, nil", a.disconnects, a.proc)
	}
	if b.proc == nil || b.proc == first {
		t.Error("new source did not get a fresh analyser")
	}

	// Audio reaching the stale analyser never shows up.
	loud := make([]float32, 64)
	for i := range loud {
		loud[i] = 1
	}
	first.Process(loud)
	frame, _ := g.Sample()
	if frame[0] != 128 {
		t.Errorf("frame[0] = %d, want 128", frame[0])
	}
}

func TestGraph_DisconnectAllIdempotent(t *testing.T) {
	t.Parallel()

	src := &fakeConnector{}
	g, _ := NewGraph(64)
	_ = g.Attach(src)

	g.DisconnectAll()
	g.DisconnectAll()

	if src.disconnects != 1 {
		t.Errorf("disconnects = %d, want 1", src.disconnects)
	}
	if g.Ready() {
		t.Error("Ready() = true after DisconnectAll")
	}
}

func TestNewGraph_InvalidWindow(t *testing.T) {
	t.Parallel()

	if _, err := NewGraph(100); !errors.Is(err, ErrInvalidWindowSize) {
		t.Errorf("NewGraph(100) error = %v, want ErrInvalidWindowSize", err)
	}
}
