// SPDX-License-Identifier: EPL-2.0

// Package surface owns the raster a visualization is drawn on.
//
// A Surface is created against a host Container, which it borrows: the
// surface appends itself as a Node and removes itself on Detach, touching
// nothing else. Drawing goes through github.com/gogpu/gg with a scale
// transform, so callers work in logical pixels while the raster holds
// logical size times the container's pixel ratio.
//
//	s, err := surface.New(container)
//	_ = s.Resize()
//	_ = s.Clear()
//	_ = s.DrawPath(points, surface.Stroke{From: from, To: to, Width: 2})
//	s.Detach()
package surface
