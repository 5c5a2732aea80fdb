// SPDX-License-Identifier: EPL-2.0

// Package render drives per-frame drawing.
//
// A Loop asks its Scheduler for one callback at a time and reschedules
// after each frame that returns true, so drawing follows the host's frame
// cadence instead of a free-running timer and at most one frame is ever
// pending. Ticker is the default Scheduler; hosts with their own frame
// clock provide another.
package render
