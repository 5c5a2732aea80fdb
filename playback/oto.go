// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const DefaultSampleRate = 44100

// oto permits one context per process; every otoOutput shares it and the
// last one to close suspends it.
var (
	otoMu   sync.Mutex
	otoCtx  *oto.Context
	otoRate int
	otoRefs int
)

type otoOutput struct {
	ctx    *oto.Context
	rate   int
	once   sync.Once
	closed error
}

// NewOtoOutput opens the system audio device. sampleRate only applies to
// the first output in the process; later outputs share its rate.
func NewOtoOutput(sampleRate int) (Output, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx == nil {
		if sampleRate <= 0 {
			sampleRate = DefaultSampleRate
		}
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
		}
		<-ready
		otoCtx, otoRate = ctx, sampleRate
	}

	otoRefs++
	return &otoOutput{ctx: otoCtx, rate: otoRate}, nil
}

func (o *otoOutput) NewPlayer(r io.Reader) Player { return o.ctx.NewPlayer(r) }
func (o *otoOutput) SampleRate() int              { return o.rate }

func (o *otoOutput) Resume() error { return o.ctx.Resume() }

func (o *otoOutput) Close() error {
	o.once.Do(func() {
		otoMu.Lock()
		defer otoMu.Unlock()

		otoRefs--
		if otoRefs == 0 {
			o.closed = o.ctx.Suspend()
		}
	})
	return o.closed
}
