package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/eaterai/internal/core"
)

// colorStyles maps cell roles to terminal colors.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorPip:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorPursuer: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorFleeing: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorPowerUp: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
