// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE integer PCM using
// github.com/go-audio/wav.
//
// 8, 16, 24 and 32-bit PCM decode to float32 samples in [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Encode writes 16-bit PCM, mostly useful for fixtures and tone files:
//
//	err := wav.Encode(file, 44100, 1, samples)
package wav
