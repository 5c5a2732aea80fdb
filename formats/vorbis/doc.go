// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Samples are interleaved float32 in [-1, 1] at the stream's native rate
// and channel count.
package vorbis
