// SPDX-License-Identifier: EPL-2.0

// Package analysis taps the live signal of a playback.Source.
//
// A Graph splices an Analyser between the decoded stream and the output
// device. The analyser keeps one window of the most recent samples; Sample
// converts the first half of that window to unsigned bytes where 128 is
// silence, the layout oscilloscope renderers expect. With the default
// 512-sample window every frame is 256 bytes.
package analysis
