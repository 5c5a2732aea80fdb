// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"sync"

	"github.com/ik5/wavescope/playback"
)

var ErrNotReady = errors.New("analysis graph not attached")

// Connector is the source end of a graph; *playback.Source satisfies it.
type Connector interface {
	Connect(p playback.Processor)
	Disconnect()
}

// Graph is the owned chain source -> analyser -> output. The output end
// stays with the source; the graph only splices its analyser in between.
type Graph struct {
	mu         sync.Mutex
	windowSize int
	src        Connector
	analyser   *Analyser
}

// NewGraph returns a detached graph whose frames are windowSize/2 bytes.
func NewGraph(windowSize int) (*Graph, error) {
	if err := ValidateWindowSize(windowSize); err != nil {
		return nil, err
	}
	return &Graph{windowSize: windowSize}, nil
}

// Attach splices a fresh analyser into src. A chain attached earlier is
// fully disconnected first, so two chains never share an output.
func (g *Graph) Attach(src Connector) error {
	a, err := NewAnalyser(g.windowSize)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.disconnectLocked()
	src.Connect(a)
	g.src = src
	g.analyser = a

	return nil
}

// Ready reports whether a source is attached.
func (g *Graph) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.src != nil
}

// FrameSize is the length of every frame Sample returns.
func (g *Graph) FrameSize() int { return g.windowSize / 2 }

// Sample returns a freshly allocated time-domain frame, or ErrNotReady
// when nothing is attached.
func (g *Graph) Sample() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.src == nil {
		return nil, ErrNotReady
	}

	frame := make([]byte, g.FrameSize())
	g.analyser.Frame(frame)
	return frame, nil
}

// DisconnectAll detaches the analyser from the source and drops every
// reference to the chain. It is idempotent.
func (g *Graph) DisconnectAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.disconnectLocked()
}

func (g *Graph) disconnectLocked() {
	if g.src == nil {
		return
	}
	g.src.Disconnect()
	g.src = nil
	g.analyser = nil
}
