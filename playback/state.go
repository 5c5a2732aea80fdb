// SPDX-License-Identifier: EPL-2.0

package playback

// State is the phase of a Source.
type State int

const (
	// StateIdle: nothing loaded.
	StateIdle State = iota
	// StateLoaded: a resource is attached and has not started.
	StateLoaded
	// StatePlaying: the resource is advancing.
	StatePlaying
	// StatePaused: playback was paused, or stopped on a device error.
	StatePaused
	// StateFinished: the resource played to its natural end.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoaded:
		return "Loaded"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
