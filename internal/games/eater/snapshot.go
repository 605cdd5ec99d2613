package eater

import "time"

// PursuerView is the read-only part of a pursuer exposed to renderers.
type PursuerView struct {
	ID           int
	Pos          Position
	Observations int
	Hunts        int
}

// Snapshot is an immutable copy of the session taken between mutations.
type Snapshot struct {
	Width  int
	Height int
	Cells  []Cell // row-major

	Player       Position
	Pursuers     []PursuerView
	PoweredUp    bool
	PowerUpUntil time.Time
	PowerUps     []Position

	Score     int
	Level     int
	Lives     int
	State     State
	Name      string
	TotalPips int
	EatenPips int
	Tick      uint64
}

// Snapshot copies the current state. Before the first Start the board is empty.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Player:       s.player,
		PoweredUp:    s.poweredUp,
		PowerUpUntil: s.powerUpUntil,
		Score:        s.score,
		Level:        s.level,
		Lives:        s.lives,
		State:        s.state,
		Name:         s.name,
		TotalPips:    s.totalPips,
		EatenPips:    s.eatenPips,
		Tick:         s.ticks,
	}
	if s.board != nil {
		snap.Width = s.board.Width()
		snap.Height = s.board.Height()
		snap.Cells = s.board.Cells()
	}
	if len(s.pursuers) > 0 {
		snap.Pursuers = make([]PursuerView, len(s.pursuers))
		for i, p := range s.pursuers {
			snap.Pursuers[i] = PursuerView{
				ID:           p.ID,
				Pos:          p.Pos,
				Observations: p.Memory.SightingCount(),
				Hunts:        p.Memory.HuntCount(),
			}
		}
	}
	if s.powerUp != nil {
		snap.PowerUps = []Position{*s.powerUp}
	}
	return snap
}

// At returns the cell at p, or CellWall outside the grid.
func (s Snapshot) At(p Position) Cell {
	if p.X < 0 || p.Y < 0 || p.X >= s.Width || p.Y >= s.Height {
		return CellWall
	}
	return s.Cells[p.Y*s.Width+p.X]
}

// Completion returns the percentage of this level's pips eaten so far.
func (s Snapshot) Completion() int {
	if s.TotalPips == 0 {
		return 100
	}
	return s.EatenPips * 100 / s.TotalPips
}

// PowerUpRemaining returns how long the current power-up still lasts.
func (s Snapshot) PowerUpRemaining(now time.Time) time.Duration {
	if !s.PoweredUp {
		return 0
	}
	if d := s.PowerUpUntil.Sub(now); d > 0 {
		return d
	}
	return 0
}

// PursuerAt reports whether any pursuer stands on p.
func (s Snapshot) PursuerAt(p Position) bool {
	for _, v := range s.Pursuers {
		if v.Pos == p {
			return true
		}
	}
	return false
}

// PowerUpAt reports whether a power-up lies on p.
func (s Snapshot) PowerUpAt(p Position) bool {
	for _, q := range s.PowerUps {
		if q == p {
			return true
		}
	}
	return false
}
