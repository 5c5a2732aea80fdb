// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wavescope/audio"
)

// pcmReader is the part of gomp3.Decoder used here, split out for tests.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// frameBytes is one interleaved stereo frame of 16-bit samples.
const frameBytes = 4

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	// carry holds the bytes of a frame split across two reads.
	carry []byte
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 up-mixes mono streams to stereo.
func (s *source) Channels() int { return 2 }
func (s *source) Close() error  { return nil }
func (s *source) BufSize() int  { return cap(s.buf) / 2 }

// ReadSamples only ever returns whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	need := (len(dst) / 2) * frameBytes
	if need == 0 {
		return 0, nil
	}
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	held := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[held:])
	total := held + n
	whole := total - total%frameBytes
	s.carry = append(s.carry, s.buf[whole:total]...)

	samples := whole / 2
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
		carry:      make([]byte, 0, frameBytes),
	}, nil
}
