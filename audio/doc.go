// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM stream primitives the player is built on.
//
// Every decoder in formats/ yields a Source: an interleaved float32 stream
// in [-1, 1]. Sources chain, so processing stages wrap one another:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	out := audio.NewResampler(mono, 44100)
//
// Conform assembles exactly that chain for the output device, skipping
// stages that would be no-ops:
//
//	out, err := audio.Conform(src, 44100)
//
// # Resampling
//
// The Resampler uses Catmull-Rom cubic interpolation over a four frame
// window and applies a one-pole low-pass filter to the input when
// downsampling.
//
// # Format Registry
//
// A Registry maps format keys (file extensions without the dot) to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("WAV")
package audio
