// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"errors"

	"github.com/ik5/wavescope/analysis"
	"github.com/ik5/wavescope/playback"
	"github.com/ik5/wavescope/surface"
)

var (
	// ErrMissingContainer is returned by Create without a container. Create
	// still returns a usable inert engine alongside it, and Load on that
	// engine returns ErrMissingContainer again.
	ErrMissingContainer = surface.ErrMissingContainer
	ErrInvalidResource  = playback.ErrInvalidResource
	ErrNotReady         = analysis.ErrNotReady
	ErrDestroyed        = errors.New("engine destroyed")
)
