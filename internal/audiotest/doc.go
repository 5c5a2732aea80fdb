// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic stand-ins for the audio device,
// the frame scheduler and the host container, plus fixture helpers.
package audiotest
