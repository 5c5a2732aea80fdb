// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"image"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/wavescope/events"
)

// Engine is the part of *wavescope.Engine the player drives.
type Engine interface {
	PlayPause()
	IsPlaying() bool
	Snapshot() image.Image
	Err() error
	Destroy()
}

// Status of the loaded track as seen through engine events.
type Status int

const (
	StatusLoaded Status = iota
	StatusPlaying
	StatusPaused
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	default:
		return "ready"
	}
}

// footerRows is the number of terminal rows below the waveform.
const footerRows = 2

// Model is the bubbletea model of the player.
type Model struct {
	engine    Engine
	container *Container
	events    <-chan events.Kind
	title     string
	interval  time.Duration

	width  int
	height int

	status   Status
	keys     KeyMap
	help     help.Model
	styles   Styles
	quitting bool
}

// New returns a model for engine. evs delivers engine events; the caller
// subscribes and forwards them.
func New(engine Engine, c *Container, evs <-chan events.Kind, title string, fps int) *Model {
	if fps <= 0 {
		fps = 30
	}
	return &Model{
		engine:    engine,
		container: c,
		events:    evs,
		title:     title,
		interval:  time.Second / time.Duration(fps),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    DefaultStyles(),
	}
}

// Forward returns a handler that sends kind on ch without blocking.
func Forward(ch chan<- events.Kind, kind events.Kind) events.Handler {
	return func() {
		select {
		case ch <- kind:
		default:
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitEvent())
}

// Status returns the track status shown in the footer.
func (m *Model) Status() Status { return m.status }
