// SPDX-License-Identifier: EPL-2.0

// Package formats wires the built-in decoders into an audio.Registry and
// maps resource locators to format keys.
package formats

import (
	"net/url"
	"path"
	"strings"

	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/formats/aiff"
	"github.com/ik5/wavescope/formats/mp3"
	"github.com/ik5/wavescope/formats/vorbis"
	"github.com/ik5/wavescope/formats/wav"
)

// NewRegistry returns a registry holding every built-in decoder under the
// file extensions it is commonly found with.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// FormatOf returns the lower-cased extension of the locator's path without
// the dot. For URLs the query and fragment are ignored.
func FormatOf(locator string) string {
	p := locator
	if strings.Contains(locator, "://") {
		if u, err := url.Parse(locator); err == nil {
			p = u.Path
		}
	}

	p = strings.ReplaceAll(p, `\`, "/")
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}
