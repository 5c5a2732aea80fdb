// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/ik5/wavescope/surface"
)

// Container is a resizable surface.Container that records its children.
type Container struct {
	mu       sync.Mutex
	w, h     float64
	ratio    float64
	children []surface.Node
}

var _ surface.Container = (*Container)(nil)

func NewContainer(w, h, ratio float64) *Container {
	return &Container{w: w, h: h, ratio: ratio}
}

func (c *Container) Size() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.w, c.h
}

func (c *Container) PixelRatio() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ratio
}

func (c *Container) SetSize(w, h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.w, c.h = w, h
}

func (c *Container) SetPixelRatio(r float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ratio = r
}

func (c *Container) Append(n surface.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.children = append(c.children, n)
}

func (c *Container) Remove(n surface.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, child := range c.children {
		if child == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Children returns the nodes currently in the container.
func (c *Container) Children() []surface.Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]surface.Node(nil), c.children...)
}
