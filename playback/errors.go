// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrInvalidResource is returned by Load for locators that cannot be
	// played: empty, of an unknown format, unreadable or undecodable.
	ErrInvalidResource = errors.New("invalid resource")

	ErrClosed            = errors.New("playback source closed")
	ErrOutputUnavailable = errors.New("audio output unavailable")
)
