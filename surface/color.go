// SPDX-License-Identifier: EPL-2.0

package surface

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA"; the leading
// '#' is optional.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}

	return gg.Hex(hex), nil
}
