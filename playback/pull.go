// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ik5/wavescope/audio"
)

type processorRef struct {
	p Processor
}

// pull is the io.Reader an output player drains. It reads the conformed
// stream, hands each block to the connected processor and encodes it as
// float32 little-endian. It never takes the Source lock: the device
// goroutine calls Read while holding the player's own lock.
type pull struct {
	mu     sync.Mutex
	stream audio.Source
	proc   *atomic.Pointer[processorRef]
	buf    []float32

	done atomic.Bool
	err  atomic.Pointer[error]
}

func newPull(stream audio.Source, proc *atomic.Pointer[processorRef]) *pull {
	return &pull{stream: stream, proc: proc}
}

func (p *pull) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		return 0, io.EOF
	}

	frames := len(b) / 4
	if frames == 0 {
		return 0, nil
	}
	if cap(p.buf) < frames {
		p.buf = make([]float32, frames)
	}
	buf := p.buf[:frames]

	n, err := p.stream.ReadSamples(buf)
	if n > 0 {
		if ref := p.proc.Load(); ref != nil {
			ref.p.Process(buf[:n])
		}
		for i, v := range buf[:n] {
			binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
		}
	}

	if err != nil {
		if err != io.EOF {
			p.err.Store(&err)
		}
		p.done.Store(true)
		p.stream = nil
		return 4 * n, io.EOF
	}
	return 4 * n, nil
}

// result reports whether the stream has ended and the decode error that
// ended it, if any.
func (p *pull) result() (bool, error) {
	if !p.done.Load() {
		return false, nil
	}
	if e := p.err.Load(); e != nil {
		return true, *e
	}
	return true, nil
}

// detach makes every later Read report EOF.
func (p *pull) detach() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stream = nil
}
