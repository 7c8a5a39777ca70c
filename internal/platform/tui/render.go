package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	helpBox     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(1, 2)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Rows are joined with newlines; each row is rendered by renderRow.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one screen row.
// Adjacent glyphs sharing a colour are rendered as one run.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	runColor := core.ColorDefault

	// Flush the pending run with its colour's style
	flush := func() {
		if len(run) == 0 {
			return
		}
		style, ok := colorStyles[runColor]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(string(run)))
		run = run[:0]
	}

	for x := range s.Width() {
		g := s.GetCell(x, y)
		if g.Color != runColor {
			flush()
			runColor = g.Color
		}
		run = append(run, g.Rune)
	}
	flush()

	return sb.String()
}
