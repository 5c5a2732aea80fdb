// SPDX-License-Identifier: EPL-2.0

// Package wavescope plays an audio resource and draws its live waveform.
//
// An Engine owns a playback source, an analysis graph that taps the
// decoded signal, a render loop and a surface appended to a host-provided
// container:
//
//	e, err := wavescope.Create(wavescope.Options{Container: c})
//	if err != nil {
//		return err
//	}
//	defer e.Destroy()
//
//	if err := e.Load("track.mp3"); err != nil {
//		return err
//	}
//	e.On(events.Finish, func() { fmt.Println("done") })
//	e.PlayPause()
//
// Each frame the surface is resized to the container, cleared to a
// translucent backdrop and stroked with the current window of samples.
// Nothing is drawn ahead of time.
package wavescope
