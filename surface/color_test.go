// SPDX-License-Identifier: EPL-2.0

package surface

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		r, g, b float64
		ok      bool
	}{
		{"#6aa9ff", 0x6a / 255.0, 0xa9 / 255.0, 1, true},
		{"#ffffff", 1, 1, 1, true},
		{"#000", 0, 0, 0, true},
		{"#ff000080", 1, 0, 0, true},
		{"", 0, 0, 0, false},
		{"6aa9ff", 0x6a / 255.0, 0xa9 / 255.0, 1, true},
		{"#12345", 0, 0, 0, false},
		{"#gggggg", 0, 0, 0, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if !tt.ok {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if math.Abs(got.R-tt.r) > 1e-3 || math.Abs(got.G-tt.g) > 1e-3 || math.Abs(got.B-tt.b) > 1e-3 {
			t.Errorf("ParseColor(%q) = %+v, want r=%v g=%v b=%v", tt.in, got, tt.r, tt.g, tt.b)
		}
	}
}
