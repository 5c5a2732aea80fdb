// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads the RIFF headers and returns a Source positioned at the
// first sample. Chunks other than fmt and data are skipped, so files with
// LIST or fact chunks decode as well.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := pcm.NewSource(dec, dec.Format(), int(dec.BitDepth), true)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}
