// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF integer PCM using github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit big-endian PCM decode to float32 samples in [-1, 1]:
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// The go-audio decoder seeks between chunks, so readers that cannot seek
// are buffered in memory first.
package aiff
