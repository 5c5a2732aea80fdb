// SPDX-License-Identifier: EPL-2.0

package playback

import "io"

// Player plays one stream on an Output. *oto.Player satisfies it.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Err() error
	Close() error
}

// Output is an audio device. Every Output consumes mono float32
// little-endian PCM at SampleRate.
type Output interface {
	NewPlayer(r io.Reader) Player
	// Resume asks the device to (re)start producing sound. Devices may
	// refuse until the user has interacted with the host; callers treat
	// that as best effort.
	Resume() error
	SampleRate() int
	Close() error
}

// Processor observes samples on their way to the output without altering
// them. It is called from the device goroutine.
type Processor interface {
	Process(samples []float32)
}
