// SPDX-License-Identifier: EPL-2.0

package wavescope

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/wavescope/analysis"
	"github.com/ik5/wavescope/audio"
	"github.com/ik5/wavescope/playback"
	"github.com/ik5/wavescope/render"
	"github.com/ik5/wavescope/surface"
)

const (
	DefaultWaveColor     = "#6aa9ff"
	DefaultProgressColor = "#ffffff"
	DefaultLineWidth     = 2.0
)

// Options configures an Engine. Only Container is required; every other
// field has a default.
type Options struct {
	// Container receives the engine's drawable node. It is borrowed: the
	// engine only appends and removes its own node.
	Container surface.Container

	// WaveColor and ProgressColor are the two ends of the trace gradient,
	// as "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
	WaveColor     string
	ProgressColor string
	LineWidth     float64

	// WindowSize is the analysis window; frames hold WindowSize/2 values.
	// Defaults to analysis.DefaultWindowSize.
	WindowSize int

	// Output is the playback device. When nil the system device is opened
	// through oto at SampleRate on the first Load.
	Output     playback.Output
	SampleRate int

	Opener    playback.Opener
	Registry  *audio.Registry
	Scheduler render.Scheduler
	Logger    *zap.Logger
}

type config struct {
	opts   Options
	stroke surface.Stroke
}

func (o Options) resolve() (config, error) {
	if o.WaveColor == "" {
		o.WaveColor = DefaultWaveColor
	}
	if o.ProgressColor == "" {
		o.ProgressColor = DefaultProgressColor
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.WindowSize == 0 {
		o.WindowSize = analysis.DefaultWindowSize
	}
	if o.SampleRate <= 0 {
		o.SampleRate = playback.DefaultSampleRate
	}
	if o.Scheduler == nil {
		o.Scheduler = render.NewTicker(render.DefaultFPS)
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}

	from, err := surface.ParseColor(o.WaveColor)
	if err != nil {
		return config{}, fmt.Errorf("wave color: %w", err)
	}
	to, err := surface.ParseColor(o.ProgressColor)
	if err != nil {
		return config{}, fmt.Errorf("progress color: %w", err)
	}
	if err := analysis.ValidateWindowSize(o.WindowSize); err != nil {
		return config{}, err
	}

	return config{
		opts:   o,
		stroke: surface.Stroke{From: from, To: to, Width: o.LineWidth},
	}, nil
}
