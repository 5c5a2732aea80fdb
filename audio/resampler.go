// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavescope/utils"
)

// maxIdleReads bounds how many empty, error-free reads a source may return
// in a row before the resampler gives up on it.
const maxIdleReads = 64

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// hist holds four consecutive source frames: t-1, t0, t+1, t+2.
	// real marks which of them came from the source rather than edge padding.
	hist    [4][]float32
	real    [4]bool
	started bool
	pos     float64 // fractional position between hist[1] and hist[2]

	buf    []float32
	bufPos int
	bufLen int
	srcEOF bool
	idle   int

	lowpass []float32
	primed  bool
	alpha   float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	bufSize := 4096 - 4096%channels

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		buf:      make([]float32, bufSize),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	if r.ratio > 1 {
		r.lowpass = make([]float32, channels)
		r.alpha = 0.5
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// frame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) frame(dst []float32) (bool, error) {
	for r.bufPos >= r.bufLen {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		r.bufPos, r.bufLen = 0, n-n%r.channels
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if r.bufLen == 0 && !r.srcEOF {
			r.idle++
			if r.idle > maxIdleReads {
				return false, io.ErrNoProgress
			}
			continue
		}
		r.idle = 0
	}

	copy(dst, r.buf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	if r.lowpass != nil {
		if !r.primed {
			copy(r.lowpass, dst)
			r.primed = true
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lowpass[c]
			r.lowpass[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) load(i int) error {
	ok, err := r.frame(r.hist[i])
	if err != nil {
		return err
	}
	r.real[i] = ok
	if !ok {
		copy(r.hist[i], r.hist[i-1])
	}
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.frame(r.hist[1])
	if err != nil {
		return err
	}
	r.started = true
	if !ok {
		return nil
	}
	r.real[1] = true
	copy(r.hist[0], r.hist[1])

	if err := r.load(2); err != nil {
		return err
	}
	return r.load(3)
}

func (r *Resampler) shift() error {
	oldest := r.hist[0]
	copy(r.hist[:3], r.hist[1:])
	copy(r.real[:3], r.real[1:])
	r.hist[3] = oldest

	return r.load(3)
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.started {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written+r.channels <= len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written, err
			}
		}

		if !r.real[1] {
			break
		}

		t := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], t)
		}
		written += r.channels
		r.pos += r.ratio
	}

	if !r.real[1] {
		return written, io.EOF
	}
	return written, nil
}
