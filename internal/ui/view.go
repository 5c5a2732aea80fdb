// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.container.Cells()
	wave := Cells(m.engine.Snapshot(), cols, rows)

	return lipgloss.JoinVertical(lipgloss.Left, wave, m.statusLine(), m.help.View(m.keys))
}

func (m *Model) statusLine() string {
	var state string
	switch m.status {
	case StatusPlaying:
		state = m.styles.Playing.Render(m.status.String())
	case StatusPaused:
		state = m.styles.Paused.Render(m.status.String())
	case StatusFinished:
		state = m.styles.Finished.Render(m.status.String())
	default:
		state = m.styles.Muted.Render(m.status.String())
	}

	line := fmt.Sprintf("%s  %s", m.styles.Title.Render(m.title), state)
	if err := m.engine.Err(); err != nil {
		line += "  " + m.styles.Error.Render(err.Error())
	}
	return line
}

// Cells renders img into cols x rows terminal cells, two pixel rows per
// cell: the upper half block takes the top pixel as foreground and the
// bottom pixel as background. Pixels are composited over black.
func Cells(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	var b strings.Builder
	for y := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range cols {
			top := pixel(img, x, 2*y)
			bottom := pixel(img, x, 2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
	}
	return b.String()
}

func pixel(img image.Image, x, y int) string {
	if img == nil {
		return "#000000"
	}
	p := image.Pt(x, y).Add(img.Bounds().Min)
	if !p.In(img.Bounds()) {
		return "#000000"
	}

	// Premultiplied components are already composited over black.
	c := color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
