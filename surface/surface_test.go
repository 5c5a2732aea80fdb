// SPDX-License-Identifier: EPL-2.0

package surface_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ik5/wavescope/internal/audiotest"
	"github.com/ik5/wavescope/surface"
)

func alpha(img image.Image, x, y int) uint8 {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA).A
}

func TestNew_MissingContainer(t *testing.T) {
	t.Parallel()

	if _, err := surface.New(nil); !errors.Is(err, surface.ErrMissingContainer) {
		t.Errorf("New(nil) error = %v, want ErrMissingContainer", err)
	}
}

func TestNew_AppendsNode(t *testing.T) {
	t.Parallel()

	c := audiotest.NewContainer(300, 60, 1)
	s, err := surface.New(c)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	nodes := c.Children()
	if len(nodes) != 1 || nodes[0] != surface.Node(s) {
		t.Errorf("container children = %v, want the surface", nodes)
	}
}

func TestResize_FollowsPixelRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		w, h       float64
		ratio      float64
		wantPixels image.Point
		wantRatio  float64
	}{
		{"1x", 300, 60, 1, image.Pt(300, 60), 1},
		{"2x", 300, 60, 2, image.Pt(600, 120), 2},
		{"fractional", 101, 60, 1.5, image.Pt(152, 90), 1.5},
		{"bad ratio", 300, 60, 0, image.Pt(300, 60), 1},
		{"collapsed", 0, 0, 2, image.Pt(1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := audiotest.NewContainer(tt.w, tt.h, tt.ratio)
			s, err := surface.New(c)
			if err != nil {
				t.Fatal(err)
			}

			b := s.Bounds()
			if b.Pixels != tt.wantPixels || b.Ratio != tt.wantRatio {
				t.Errorf("Bounds() = %+v, want pixels %v ratio %v", b, tt.wantPixels, tt.wantRatio)
			}
			if b.Width != tt.w || b.Height != tt.h {
				t.Errorf("logical size = %vx%v, want %vx%v", b.Width, b.Height, tt.w, tt.h)
			}
			if got := s.Image().Bounds().Size(); got != tt.wantPixels {
				t.Errorf("raster size = %v, want %v", got, tt.wantPixels)
			}
		})
	}
}

func TestResize_BetweenFrames(t *testing.T) {
	t.Parallel()

	c := audiotest.NewContainer(200, 60, 1)
	s, _ := surface.New(c)

	c.SetSize(400, 60)
	c.SetPixelRatio(2)
	if err := s.Resize(); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}

	if got := s.Bounds().Pixels; got != image.Pt(800, 120) {
		t.Errorf("Pixels = %v, want (800,120)", got)
	}
}

func TestClear_Backdrop(t *testing.T) {
	t.Parallel()

	s, _ := surface.New(audiotest.NewContainer(50, 20, 2))
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	img := s.Image()
	want := uint8(surface.Backdrop.A * 255)
	for _, p := range []image.Point{{0, 0}, {99, 39}, {50, 20}} {
		if a := alpha(img, p.X, p.Y); a < want-5 || a > want+5 {
			t.Errorf("alpha at %v = %d, want ≈%d", p, a, want)
		}
	}
}

func TestDrawPath_StrokesLine(t *testing.T) {
	t.Parallel()

	s, _ := surface.New(audiotest.NewContainer(100, 60, 2))
	_ = s.Clear()

	from, _ := surface.ParseColor("#6aa9ff")
	to, _ := surface.ParseColor("#ffffff")
	line := []surface.Point{{X: 0, Y: 30}, {X: 100, Y: 30}}
	if err := s.DrawPath(line, surface.Stroke{From: from, To: to, Width: 2}); err != nil {
		t.Fatalf("DrawPath() error = %v", err)
	}

	img := s.Image()
	if a := alpha(img, 100, 60); a < 200 {
		t.Errorf("alpha on the line = %d, want opaque", a)
	}
	if a := alpha(img, 100, 10); a > 120 {
		t.Errorf("alpha off the line = %d, want backdrop", a)
	}
}

func TestDrawPath_TooFewPoints(t *testing.T) {
	t.Parallel()

	s, _ := surface.New(audiotest.NewContainer(10, 10, 1))
	if err := s.DrawPath([]surface.Point{{X: 1, Y: 1}}, surface.Stroke{Width: 2}); err != nil {
		t.Errorf("DrawPath(1 point) error = %v", err)
	}
}

func TestDetach(t *testing.T) {
	t.Parallel()

	c := audiotest.NewContainer(100, 60, 1)
	s, _ := surface.New(c)

	s.Detach()
	s.Detach()

	if len(c.Children()) != 0 {
		t.Errorf("container still has %d children", len(c.Children()))
	}
	if !s.Detached() {
		t.Error("Detached() = false")
	}
	if err := s.Resize(); !errors.Is(err, surface.ErrDetached) {
		t.Errorf("Resize() after Detach error = %v, want ErrDetached", err)
	}
	if err := s.Clear(); !errors.Is(err, surface.ErrDetached) {
		t.Errorf("Clear() after Detach error = %v, want ErrDetached", err)
	}
	if s.Image() != nil {
		t.Error("Image() after Detach is not nil")
	}
}

func TestDetach_LeavesOtherChildren(t *testing.T) {
	t.Parallel()

	c := audiotest.NewContainer(100, 60, 1)
	a, _ := surface.New(c)
	b, _ := surface.New(c)

	a.Detach()

	nodes := c.Children()
	if len(nodes) != 1 || nodes[0] != surface.Node(b) {
		t.Errorf("children = %v, want only the second surface", nodes)
	}
}
