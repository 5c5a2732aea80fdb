// SPDX-License-Identifier: EPL-2.0

package surface

import (
	"errors"
	"image"
	"math"
	"sync"

	"github.com/gogpu/gg"
)

var (
	ErrMissingContainer = errors.New("surface: missing container")
	ErrDetached         = errors.New("surface: detached")
)

// Backdrop is painted over every cleared frame. Its low alpha leaves the
// trace readable on any container background.
var Backdrop = gg.RGBA{R: 10.0 / 255, G: 16.0 / 255, B: 32.0 / 255, A: 0.35}

// Point is a position in logical (device independent) pixels.
type Point struct {
	X, Y float64
}

// Node is a drawable a Container can hold.
type Node interface {
	Image() image.Image
}

// Container is the host element a Surface draws into. It is borrowed: the
// surface only appends and removes its own node.
type Container interface {
	// Size is the current logical size of the drawing area.
	Size() (width, height float64)
	// PixelRatio is the number of physical pixels per logical pixel.
	PixelRatio() float64
	Append(n Node)
	Remove(n Node)
}

// Stroke describes how DrawPath paints a polyline: a linear gradient from
// From at the top left corner to To at the bottom right corner.
type Stroke struct {
	From  gg.RGBA
	To    gg.RGBA
	Width float64
}

// Bounds reports the size the surface was last resized to.
type Bounds struct {
	Width, Height float64 // logical
	Pixels        image.Point
	Ratio         float64
}

// Surface is a 2-D raster bound to a Container and scaled for its pixel
// density. All drawing uses logical coordinates.
type Surface struct {
	mu        sync.Mutex
	container Container
	dc        *gg.Context
	bounds    Bounds
	detached  bool
}

// New creates a surface sized to c and appends it to c.
func New(c Container) (*Surface, error) {
	if c == nil {
		return nil, ErrMissingContainer
	}

	s := &Surface{
		container: c,
		dc:        gg.NewContext(1, 1),
	}
	if err := s.Resize(); err != nil {
		return nil, err
	}
	c.Append(s)

	return s, nil
}

// Resize recomputes the physical size from the container's logical size
// and pixel ratio, then resets the transform so drawing stays logical.
// It is cheap when nothing changed and is meant to run before every frame.
func (s *Surface) Resize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detached {
		return ErrDetached
	}

	w, h := s.container.Size()
	ratio := s.container.PixelRatio()
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	w, h = clampSize(w), clampSize(h)

	px := image.Pt(physical(w, ratio), physical(h, ratio))
	if err := s.dc.Resize(px.X, px.Y); err != nil {
		return err
	}
	s.dc.Identity()
	s.dc.Scale(ratio, ratio)

	s.bounds = Bounds{Width: w, Height: h, Pixels: px, Ratio: ratio}
	return nil
}

func clampSize(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func physical(logical, ratio float64) int {
	return max(1, int(math.Ceil(logical*ratio)))
}

// Clear erases the previous frame and lays down the backdrop.
func (s *Surface) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detached {
		return ErrDetached
	}

	s.dc.Clear()
	s.dc.Push()
	s.dc.Identity()
	s.dc.DrawRectangle(0, 0, float64(s.bounds.Pixels.X), float64(s.bounds.Pixels.Y))
	s.dc.SetFillBrush(gg.Solid(Backdrop))
	err := s.dc.Fill()
	s.dc.Pop()

	return err
}

// DrawPath strokes the polyline through points. Fewer than two points
// draw nothing.
func (s *Surface) DrawPath(points []Point, st Stroke) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detached {
		return ErrDetached
	}
	if len(points) < 2 {
		return nil
	}

	// Brushes are sampled per device pixel, so the gradient spans the
	// physical raster while the path itself goes through the transform.
	px := s.bounds.Pixels
	grad := gg.NewLinearGradientBrush(0, 0, float64(px.X), float64(px.Y)).
		AddColorStop(0, st.From).
		AddColorStop(1, st.To)

	s.dc.SetStrokeBrush(grad)
	s.dc.SetLineWidth(st.Width)
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}

	return s.dc.Stroke()
}

// Bounds returns the logical and physical size from the last Resize.
func (s *Surface) Bounds() Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bounds
}

// Image returns a copy of the current raster, or nil once detached.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detached {
		return nil
	}
	return s.dc.Image()
}

// Detached reports whether Detach has run.
func (s *Surface) Detached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.detached
}

// Detach removes the surface from its container and releases the raster.
// Calling it again does nothing.
func (s *Surface) Detach() {
	s.mu.Lock()
	if s.detached {
		s.mu.Unlock()
		return
	}
	s.detached = true
	c := s.container
	_ = s.dc.Close()
	s.mu.Unlock()

	// Outside the lock: hosts may call Image from Remove.
	c.Remove(s)
}
