// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/wavescope/events"
)

type (
	// FrameMsg asks for a redraw of the waveform.
	FrameMsg time.Time

	// EventMsg carries one engine event.
	EventMsg events.Kind
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.container.SetCells(msg.Width, max(msg.Height-footerRows, 1))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.engine.Destroy()
			return m, tea.Quit
		case key.Matches(msg, m.keys.PlayPause):
			m.engine.PlayPause()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case EventMsg:
		switch events.Kind(msg) {
		case events.Play:
			m.status = StatusPlaying
		case events.Pause:
			m.status = StatusPaused
		case events.Finish:
			m.status = StatusFinished
		}
		return m, m.waitEvent()

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m *Model) waitEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		k, ok := <-m.events
		if !ok {
			return nil
		}
		return EventMsg(k)
	}
}
