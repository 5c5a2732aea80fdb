// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"sync"

	"github.com/ik5/wavescope/surface"
)

// Container maps the terminal to a surface container. Every cell holds two
// vertically stacked pixels, drawn with a half block.
type Container struct {
	mu    sync.Mutex
	cols  int
	rows  int
	nodes []surface.Node
}

var _ surface.Container = (*Container)(nil)

func NewContainer(cols, rows int) *Container {
	return &Container{cols: cols, rows: rows}
}

// SetCells resizes the drawing area to cols x rows terminal cells.
func (c *Container) SetCells(cols, rows int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cols, c.rows = max(cols, 0), max(rows, 0)
}

func (c *Container) Cells() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cols, c.rows
}

func (c *Container) Size() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return float64(c.cols), float64(2 * c.rows)
}

func (c *Container) PixelRatio() float64 { return 1 }

func (c *Container) Append(n surface.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nodes = append(c.nodes, n)
}

func (c *Container) Remove(n surface.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, node := range c.nodes {
		if node == n {
			c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
			return
		}
	}
}

// Nodes returns the drawables currently attached.
func (c *Container) Nodes() []surface.Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]surface.Node(nil), c.nodes...)
}
