// Package tui provides the Bubble Tea front end for the maze game.
// It handles the terminal UI loop, input mapping, and drives the session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step. Gen identifies the run that
// armed the timer; ticks from an earlier run are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
