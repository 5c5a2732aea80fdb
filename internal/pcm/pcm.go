// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of github.com/go-audio to
// audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM and normalises it to float32 in [-1, 1].
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	offset   int
	scale    float32
	buf      *goaudio.IntBuffer
}

// NewSource wraps dec. Unsigned is set for formats that store 8-bit samples
// without sign (WAV does, AIFF does not).
func NewSource(dec Reader, format *goaudio.Format, bitDepth int, unsigned bool) (*Source, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, fmt.Errorf("%w: missing format", ErrUnsupportedBitDepth)
	}

	var full float32
	switch bitDepth {
	case 8:
		full = 128
	case 16:
		full = 32768
	case 24:
		full = 8388608
	case 32:
		full = 2147483648
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	s := &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		scale:    1 / full,
	}
	if unsigned && bitDepth == 8 {
		s.offset = 128
	}

	return s, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.buf.Data[i]-s.offset) * s.scale
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering pcm data: %w", err)
	}
	return bytes.NewReader(data), nil
}
