// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ik5/wavescope/utils"
)

const (
	DefaultWindowSize = 512
	MinWindowSize     = 32
	MaxWindowSize     = 32768
)

var ErrInvalidWindowSize = errors.New("analysis window size must be a power of two between 32 and 32768")

// ValidateWindowSize reports whether n can size an analysis window.
func ValidateWindowSize(n int) error {
	if n < MinWindowSize || n > MaxWindowSize || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, n)
	}
	return nil
}

// Analyser keeps the most recent window of samples that passed through it.
// It never alters the samples.
type Analyser struct {
	mu   sync.Mutex
	ring []float32
	pos  int // index of the oldest sample
}

func NewAnalyser(windowSize int) (*Analyser, error) {
	if err := ValidateWindowSize(windowSize); err != nil {
		return nil, err
	}
	return &Analyser{ring: make([]float32, windowSize)}, nil
}

func (a *Analyser) WindowSize() int { return len(a.ring) }

// Process records samples. It runs on the audio device goroutine.
func (a *Analyser) Process(samples []float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.ring)
	if len(samples) >= n {
		copy(a.ring, samples[len(samples)-n:])
		a.pos = 0
		return
	}

	for _, v := range samples {
		a.ring[a.pos] = v
		a.pos = (a.pos + 1) % n
	}
}

// Frame writes the window, oldest sample first, as unsigned bytes centred
// on 128. Only the first len(dst) samples of the window are written.
func (a *Analyser) Frame(dst []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.ring)
	for i := range min(len(dst), n) {
		dst[i] = utils.Float32ToUint8(a.ring[(a.pos+i)%n])
	}
}

// Reset returns the window to silence.
func (a *Analyser) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.ring)
	a.pos = 0
}
