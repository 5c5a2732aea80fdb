// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	src, err := pcm.NewSource(dec, format, int(dec.BitDepth), false)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}
