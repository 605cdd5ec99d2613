package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eaterai/internal/games/eater"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// menuItem is an entry on the main menu.
type menuItem int

const (
	menuStart menuItem = iota
	menuConfigure
	menuScores
	menuQuit
)

var menuItems = []menuItem{menuStart, menuConfigure, menuScores, menuQuit}

func (i menuItem) String() string {
	switch i {
	case menuStart:
		return "Start game"
	case menuConfigure:
		return "Configure"
	case menuScores:
		return "High scores"
	case menuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// configField is a slider on the configuration screen.
type configField int

const (
	fieldRobots configField = iota
	fieldLives
	fieldCompletion
	fieldPowerUp
	fieldCount
)

func (f configField) label() string {
	switch f {
	case fieldRobots:
		return fmt.Sprintf("Starting robots (%d-%d)", eater.MinStartingRobots, eater.MaxStartingRobots)
	case fieldLives:
		return fmt.Sprintf("Lives (%d-%d)", eater.MinLives, eater.MaxLives)
	case fieldCompletion:
		return fmt.Sprintf("Completion %% (%d-%d)", eater.MinCompletion, eater.MaxCompletion)
	case fieldPowerUp:
		return fmt.Sprintf("Power-up duration (%d-%ds)",
			int(eater.MinPowerUpDuration/time.Second), int(eater.MaxPowerUpDuration/time.Second))
	default:
		return "?"
	}
}

func (f configField) value(s eater.Settings) string {
	switch f {
	case fieldRobots:
		return fmt.Sprintf("%d", s.StartingRobots)
	case fieldLives:
		return fmt.Sprintf("%d", s.Lives)
	case fieldCompletion:
		return fmt.Sprintf("%d%%", s.CompletionPercentage)
	case fieldPowerUp:
		return fmt.Sprintf("%ds", int(s.PowerUpDuration/time.Second))
	default:
		return ""
	}
}

// adjust moves the slider by delta steps. The result is clamped.
func (f configField) adjust(s eater.Settings, delta int) eater.Settings {
	switch f {
	case fieldRobots:
		s.StartingRobots += delta
	case fieldLives:
		s.Lives += delta
	case fieldCompletion:
		s.CompletionPercentage += delta
	case fieldPowerUp:
		s.PowerUpDuration += time.Duration(delta) * eater.PowerUpDurationStep
	}
	return s.Normalize()
}

// centerText centers (possibly multi-line) text within the given width.
func centerText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// slider draws a bar for a value between lo and hi.
func slider(v, lo, hi, width int) string {
	if hi <= lo {
		return strings.Repeat("━", width)
	}
	filled := (v - lo) * width / (hi - lo)
	return strings.Repeat("━", filled) + "●" + strings.Repeat("─", width-filled)
}

func sliderFor(f configField, s eater.Settings) string {
	const w = 20
	switch f {
	case fieldRobots:
		return slider(s.StartingRobots, eater.MinStartingRobots, eater.MaxStartingRobots, w)
	case fieldLives:
		return slider(s.Lives, eater.MinLives, eater.MaxLives, w)
	case fieldCompletion:
		return slider(s.CompletionPercentage, eater.MinCompletion, eater.MaxCompletion, w)
	case fieldPowerUp:
		return slider(int(s.PowerUpDuration/time.Second),
			int(eater.MinPowerUpDuration/time.Second), int(eater.MaxPowerUpDuration/time.Second), w)
	default:
		return ""
	}
}

// viewMenu renders the main menu with the name field.
func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  E A T E R  "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText("eat the pips, dodge the robots", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Name: "+m.nameInput.View(), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.String() + "  "
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + item.String() + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Ctrl+C: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// viewConfig renders the configuration sliders.
func (m Model) viewConfig() string {
	var b strings.Builder
	settings := m.session.Settings()

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Configuration"), m.width))
	b.WriteString("\n\n")

	for f := configField(0); f < fieldCount; f++ {
		label := fmt.Sprintf("%-28s %s %5s", f.label(), sliderFor(f, settings), f.value(settings))
		if int(f) == m.configCursor {
			label = selectedStyle.Render(label)
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(helpStyle.Render("Up/Down: Field  |  Left/Right: Adjust  |  Enter/Esc: Back to menu"), m.width))
	b.WriteString("\n")
	return b.String()
}

// viewOver renders the game over summary.
func (m Model) viewOver() string {
	var b strings.Builder
	snap := m.session.Snapshot()

	b.WriteString("\n\n")
	b.WriteString(centerText(noticeStyle.Bold(true).Render("G A M E   O V E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s scored %d on level %d", snap.Name, snap.Score, snap.Level), m.width))
	b.WriteString("\n")

	if m.recordErr != nil {
		b.WriteString(centerText(noticeStyle.Render("score not saved: "+m.recordErr.Error()), m.width))
		b.WriteString("\n")
	} else if m.highScore > 0 && snap.Score >= m.highScore {
		b.WriteString(centerText(titleStyle.Render("New high score!"), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Menu  |  C: Configure  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}
