// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ik5/wavescope"
	"github.com/ik5/wavescope/analysis"
	"github.com/ik5/wavescope/events"
	"github.com/ik5/wavescope/internal/ui"
	"github.com/ik5/wavescope/playback"
	"github.com/ik5/wavescope/render"
)

func main() {
	var (
		fps      = flag.Int("fps", render.DefaultFPS, "Frames per second")
		wave     = flag.String("wave", wavescope.DefaultWaveColor, "Wave color (#rrggbb)")
		progress = flag.String("progress", wavescope.DefaultProgressColor, "Progress color (#rrggbb)")
		window   = flag.Int("window", analysis.DefaultWindowSize, "Analysis window size (power of two)")
		rate     = flag.Int("rate", playback.DefaultSampleRate, "Output sample rate")
		debug    = flag.Bool("debug", false, "Write debug logs")
		logFile  = flag.String("log", "wavescope.log", "Log file used with -debug")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: wavescope [flags] <file.wav|mp3|ogg|aiff>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *debug {
		logger, err := newLogger(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		wavescope.SetLogger(logger)
	}

	opts := wavescope.Options{
		WaveColor:     *wave,
		ProgressColor: *progress,
		WindowSize:    *window,
		SampleRate:    *rate,
		Scheduler:     render.NewTicker(*fps),
	}
	if err := run(flag.Arg(0), opts, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, opts wavescope.Options, fps int) error {
	container := ui.NewContainer(80, 10)
	opts.Container = container

	engine, err := wavescope.Create(opts)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer engine.Destroy()

	evs := make(chan events.Kind, 8)
	for _, k := range []events.Kind{events.Play, events.Pause, events.Finish} {
		if err := engine.On(k, ui.Forward(evs, k)); err != nil {
			return fmt.Errorf("subscribe %s: %w", k, err)
		}
	}

	if err := engine.Load(path); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	model := ui.New(engine, container, evs, filepath.Base(path), fps)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger.Named("wavescope"), nil
}
