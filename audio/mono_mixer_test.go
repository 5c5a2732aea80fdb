// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"io"
	"testing"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/internal/audiotest"
)

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	// Left 1.0, right 0.0.
	src := audiotest.NewSource(8000, 2, 100, func(_, ch int) float32 {
		if ch == 0 {
			return 1
		}
		return 0
	})
	m := audio.NewMonoMixer(src)

	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if m.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", m.SampleRate())
	}

	got, err := audiotest.Samples(m)
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	for i, v := range got {
		if v != 0.5 {
			t.Fatalf("got[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestMonoMixer_PassesMonoThrough(t *testing.T) {
	t.Parallel()

	got, err := audiotest.Samples(audio.NewMonoMixer(audiotest.NewConstant(8000, 1, 50, 0.75)))
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	if len(got) != 50 || got[0] != 0.75 {
		t.Errorf("got %d samples starting %v, want 50 of 0.75", len(got), got[0])
	}
}

// chunkedSource hands out its samples in the given read sizes, ignoring
// frame boundaries.
type chunkedSource struct {
	samples []float32
	chunks  []int
}

func (c *chunkedSource) SampleRate() int { return 8000 }
func (c *chunkedSource) Channels() int   { return 2 }
func (c *chunkedSource) BufSize() int    { return 64 }
func (c *chunkedSource) Close() error    { return nil }

func (c *chunkedSource) ReadSamples(dst []float32) (int, error) {
	if len(c.samples) == 0 {
		return 0, io.EOF
	}
	n := len(c.samples)
	if len(c.chunks) > 0 {
		n = min(n, c.chunks[0])
		c.chunks = c.chunks[1:]
	}
	n = copy(dst, c.samples[:n])
	c.samples = c.samples[n:]
	return n, nil
}

func TestMonoMixer_SplitFrames(t *testing.T) {
	t.Parallel()

	// Left carries the frame index, right is silent.
	samples := make([]float32, 20)
	for f := range 10 {
		samples[2*f] = float32(2 * f)
	}
	m := audio.NewMonoMixer(&chunkedSource{samples: samples, chunks: []int{3, 5, 1, 7}})

	got, err := audiotest.Samples(m)
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	for f, v := range got {
		if v != float32(f) {
			t.Fatalf("got[%d] = %v, want %d", f, v, f)
		}
	}
}
