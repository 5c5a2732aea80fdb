// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source reports two
// channels; mono files come out with both channels equal:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
package mp3
