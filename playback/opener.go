// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// Opener resolves a resource locator to a byte stream. The playback core
// never fetches anything itself; hosts that play remote resources supply
// their own Opener.
type Opener interface {
	Open(locator string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(locator string) (io.ReadCloser, error)

func (f OpenerFunc) Open(locator string) (io.ReadCloser, error) { return f(locator) }

// FileOpener opens local paths and file:// URLs.
type FileOpener struct{}

func (FileOpener) Open(locator string) (io.ReadCloser, error) {
	path := locator
	if strings.Contains(locator, "://") {
		u, err := url.Parse(locator)
		if err != nil {
			return nil, fmt.Errorf("parse locator: %w", err)
		}
		if u.Scheme != "file" {
			return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
		path = u.Path
	}

	return os.Open(path)
}
