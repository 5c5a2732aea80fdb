// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
	"sync"

	"github.com/ik5/wavescope/audio"
)

// Source is a deterministic audio.Source. Its samples come from a wave
// function of frame index and channel.
type Source struct {
	mu       sync.Mutex
	rate     int
	channels int
	frames   int
	pos      int
	wave     func(frame, ch int) float32
	fail     error
	failAt   int
	closed   bool
}

var _ audio.Source = (*Source)(nil)

// NewSource returns a source of frames frames per channel.
func NewSource(rate, channels, frames int, wave func(frame, ch int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave, failAt: -1}
}

func NewSilence(rate, channels, frames int) *Source {
	return NewConstant(rate, channels, frames, 0)
}

func NewConstant(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

// NewSine returns a full-scale sine at freq Hz, identical on every channel.
func NewSine(rate, channels, frames int, freq float64) *Source {
	return NewSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// FailAt makes ReadSamples return err once frame index at is reached.
func (s *Source) FailAt(at int, err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failAt, s.fail = at, err
	return s
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 1024 * max(s.channels, 1) }

func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *Source) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Position returns the number of frames read so far.
func (s *Source) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pos
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil && s.pos >= s.failAt {
		return 0, s.fail
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	if s.fail != nil && s.failAt > s.pos {
		n = min(n, s.failAt-s.pos)
	}
	for i := range n {
		for ch := range s.channels {
			dst[i*s.channels+ch] = s.wave(s.pos+i, ch)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}

// Decoder ignores its input and hands out sources from New. Paired with
// NopOpener it lets tests load any locator without touching the disk.
type Decoder struct {
	New func() audio.Source
}

func (d Decoder) Decode(io.Reader) (audio.Source, error) { return d.New(), nil }

// Samples reads src to the end.
func Samples(src audio.Source) ([]float32, error) {
	var out []float32
	buf := make([]float32, src.BufSize())
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
