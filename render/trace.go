// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ik5/wavescope/surface"

// Trace lays a time-domain frame across a width x height area: samples are
// spaced width/len(frame) apart, value v sits at (v/128)*height/2, and the
// line ends on the vertical midpoint of the right edge.
func Trace(frame []byte, width, height float64) []surface.Point {
	if len(frame) == 0 {
		return nil
	}

	pts := make([]surface.Point, 0, len(frame)+1)
	step := width / float64(len(frame))
	for i, v := range frame {
		pts = append(pts, surface.Point{
			X: float64(i) * step,
			Y: float64(v) / 128.0 * height / 2,
		})
	}

	return append(pts, surface.Point{X: width, Y: height / 2})
}
