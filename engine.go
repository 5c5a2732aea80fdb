// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"fmt"
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/wavescope/analysis"
	"github.com/ik5/wavescope/events"
	"github.com/ik5/wavescope/playback"
	"github.com/ik5/wavescope/render"
	"github.com/ik5/wavescope/surface"
)

// Engine plays one audio resource at a time and draws its live waveform
// onto a surface inside the host's container.
type Engine struct {
	cfg    config
	logger *zap.Logger
	bus    events.Bus
	loop   *render.Loop

	mu        sync.Mutex
	surface   *surface.Surface
	source    *playback.Source
	graph     *analysis.Graph
	destroyed bool
}

// Create validates opts and binds a new surface to opts.Container. No
// resource is loaded. Without a container the engine is returned inert
// together with ErrMissingContainer, so check for that error before
// discarding e. Destroy is still safe on it.
func Create(opts Options) (*Engine, error) {
	cfg, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: cfg.opts.Logger,
		loop:   render.NewLoop(cfg.opts.Scheduler),
	}

	s, err := surface.New(cfg.opts.Container)
	if err != nil {
		e.logger.Warn("engine has no container, drawing disabled", zap.Error(err))
		return e, err
	}
	e.surface = s

	return e, nil
}

// Load tears down the current chain (loop, graph, then resource) and
// attaches url in its place. Failures wrap ErrInvalidResource and leave
// the engine with nothing loaded.
func (e *Engine) Load(url string) error {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return ErrDestroyed
	}
	if e.surface == nil {
		e.mu.Unlock()
		return ErrMissingContainer
	}

	e.loop.Stop()
	old := e.graph
	e.graph = nil

	if e.source == nil {
		src, err := e.newSource()
		if err != nil {
			e.mu.Unlock()
			return err
		}
		e.source = src
	}
	src := e.source
	e.mu.Unlock()

	if old != nil {
		old.DisconnectAll()
	}
	// Hooks may fire from here on, so no engine lock is held.
	src.Release()

	if err := src.Load(url); err != nil {
		e.logger.Debug("load failed", zap.String("url", url), zap.Error(err))
		return err
	}

	g, err := analysis.NewGraph(e.cfg.opts.WindowSize)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrDestroyed
	}
	if e.graph != nil {
		e.graph.DisconnectAll()
	}
	if err := g.Attach(src); err != nil {
		return err
	}
	e.graph = g
	e.loop.Start(e.frame(g))
	e.logger.Debug("resource attached", zap.String("url", url))

	return nil
}

func (e *Engine) newSource() (*playback.Source, error) {
	out := e.cfg.opts.Output
	if out == nil {
		var err error
		out, err = playback.NewOtoOutput(e.cfg.opts.SampleRate)
		if err != nil {
			e.logger.Error("opening audio output", zap.Error(err))
			return nil, fmt.Errorf("open output: %w", err)
		}
	}

	return playback.NewSource(playback.Config{
		Output:   out,
		Opener:   e.cfg.opts.Opener,
		Registry: e.cfg.opts.Registry,
		Logger:   e.logger,
		Hooks: playback.Hooks{
			Started: func() { e.bus.Publish(events.Play) },
			Paused:  func() { e.bus.Publish(events.Pause) },
			Ended:   func() { e.bus.Publish(events.Finish) },
		},
	})
}

// frame draws one trace from g. It stops the loop once the engine is
// destroyed or g is no longer the attached graph.
func (e *Engine) frame(g *analysis.Graph) render.FrameFunc {
	return func() bool {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.destroyed || e.graph != g {
			return false
		}
		if old := e.detachUnloadedLocked(); old != nil {
			old.DisconnectAll()
			return false
		}
		if !g.Ready() {
			return false
		}

		frame, err := g.Sample()
		if err != nil {
			return false
		}

		if err := e.surface.Resize(); err != nil {
			e.logger.Debug("resize", zap.Error(err))
			return false
		}
		if err := e.surface.Clear(); err != nil {
			e.logger.Debug("clear", zap.Error(err))
			return false
		}

		b := e.surface.Bounds()
		if err := e.surface.DrawPath(render.Trace(frame, b.Width, b.Height), e.cfg.stroke); err != nil {
			e.logger.Debug("draw", zap.Error(err))
			return false
		}

		return true
	}
}

// PlayPause toggles between playing and paused. It does nothing when no
// resource is loaded or the engine is destroyed.
func (e *Engine) PlayPause() {
	e.mu.Lock()
	src := e.source
	destroyed := e.destroyed
	e.mu.Unlock()

	if destroyed || src == nil {
		return
	}
	src.Toggle()

	// A replay after the end reopens the resource and may fail, leaving
	// the source with nothing loaded.
	e.mu.Lock()
	old := e.detachUnloadedLocked()
	e.mu.Unlock()

	if old != nil {
		old.DisconnectAll()
	}
}

// detachUnloadedLocked stops the loop and takes the graph once the source
// no longer has a resource. The caller disconnects the returned graph.
func (e *Engine) detachUnloadedLocked() *analysis.Graph {
	if e.graph == nil || e.source == nil || e.source.Loaded() {
		return nil
	}

	e.loop.Stop()
	g := e.graph
	e.graph = nil
	e.logger.Debug("resource dropped, drawing stopped")
	return g
}

// IsPlaying reports whether the loaded resource is advancing.
func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	src := e.source
	e.mu.Unlock()

	return src != nil && src.IsPlaying()
}

// On registers h for kind. Handlers run synchronously on the goroutine
// that caused the event, with no engine lock held.
func (e *Engine) On(kind events.Kind, h events.Handler) error {
	e.mu.Lock()
	destroyed := e.destroyed
	e.mu.Unlock()

	if destroyed {
		return ErrDestroyed
	}
	return e.bus.On(kind, h)
}

// State returns the playback state of the loaded resource.
func (e *Engine) State() playback.State {
	e.mu.Lock()
	src := e.source
	e.mu.Unlock()

	if src == nil {
		return playback.StateIdle
	}
	return src.State()
}

// Err returns the device or decode error that last stopped playback.
func (e *Engine) Err() error {
	e.mu.Lock()
	src := e.source
	e.mu.Unlock()

	if src == nil {
		return nil
	}
	return src.Err()
}

// Snapshot returns a copy of the last drawn frame, or nil for an inert
// engine.
func (e *Engine) Snapshot() image.Image {
	e.mu.Lock()
	s := e.surface
	e.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.Image()
}

// Destroy stops the loop, disconnects the graph, releases the resource and
// the output, clears all handlers and removes the drawable node from the
// container. It is safe in any state and on repeated calls.
func (e *Engine) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true

	e.loop.Stop()
	g, src, s := e.graph, e.source, e.surface
	e.graph = nil
	e.mu.Unlock()

	if g != nil {
		g.DisconnectAll()
	}
	if src != nil {
		if err := src.Close(); err != nil {
			e.logger.Warn("closing source", zap.Error(err))
		}
	}
	e.bus.Clear()
	if s != nil {
		s.Detach()
	}

	e.logger.Debug("engine destroyed")
}
