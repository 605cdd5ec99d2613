package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/eaterai/internal/core"
	"github.com/vovakirdan/eaterai/internal/games/eater"
)

// Board layout constants
const (
	cellWidth = 2 // characters per grid cell, keeps the maze roughly square
	hudHeight = 2 // status line plus the power-up timer
	helpLines = 2
)

// glyph is what one grid cell looks like on screen.
type glyph struct {
	r     rune
	color core.Color
}

// boardFootprint returns the screen size needed to draw the snapshot.
func boardFootprint(snap eater.Snapshot) (int, int) {
	return snap.Width * cellWidth, snap.Height + hudHeight + helpLines
}

// DrawGame renders the HUD and the maze into the screen buffer.
func DrawGame(s *core.Screen, snap eater.Snapshot, now time.Time) {
	s.Clear()

	needW, needH := boardFootprint(snap)
	if s.Width() < needW || s.Height() < needH {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH))
		return
	}

	offX := (s.Width() - needW) / 2
	offY := (s.Height() - needH) / 2

	s.DrawTextColored(offX, offY, hudLine(snap), core.ColorHUD)
	if snap.PoweredUp {
		power := fmt.Sprintf("POWER %.1fs", snap.PowerUpRemaining(now).Seconds())
		s.DrawTextColored(offX, offY+1, power, core.ColorAlert)
	}

	top := offY + hudHeight
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			g := cellGlyph(snap, eater.Position{X: x, Y: y})
			sx := offX + x*cellWidth
			s.SetColored(sx, top+y, g.r, g.color)
			if g.r == '█' {
				s.SetColored(sx+1, top+y, g.r, g.color)
			}
		}
	}

	s.DrawTextColored(offX, top+snap.Height+1, "arrows/wasd move · esc abandon · q quit", core.ColorMuted)
}

// hudLine formats the status line above the maze.
func hudLine(snap eater.Snapshot) string {
	lives := strings.Repeat("♥", snap.Lives)
	return fmt.Sprintf("Score %d  Level %d  Lives %s  Pips %d%%", snap.Score, snap.Level, lives, snap.Completion())
}

// cellGlyph picks the glyph for a grid cell; actors draw over the maze.
func cellGlyph(snap eater.Snapshot, p eater.Position) glyph {
	switch {
	case snap.Player == p:
		return glyph{'@', core.ColorPlayer}
	case snap.PursuerAt(p) && snap.PoweredUp:
		return glyph{'r', core.ColorFleeing}
	case snap.PursuerAt(p):
		return glyph{'R', core.ColorPursuer}
	case snap.PowerUpAt(p):
		return glyph{'◆', core.ColorPowerUp}
	}

	switch snap.At(p) {
	case eater.CellWall:
		return glyph{'█', core.ColorWall}
	case eater.CellPip:
		return glyph{'·', core.ColorPip}
	default:
		return glyph{' ', core.ColorDefault}
	}
}
