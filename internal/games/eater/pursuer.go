package eater

import (
	"time"
)

// Pursuer is a maze agent that chases the player and learns from what it sees.
type Pursuer struct {
	ID       int
	Pos      Position
	Home     Position
	LastMove time.Time
	Memory   Memory
}

// NewPursuers creates count pursuers standing on home with empty memory.
func NewPursuers(count int, home Position, now time.Time) []Pursuer {
	ps := make([]Pursuer, count)
	for i := range ps {
		ps[i] = Pursuer{
			ID:       i,
			Pos:      home,
			Home:     home,
			LastMove: now,
		}
	}
	return ps
}

// AdvancePursuers moves every pursuer whose cadence has elapsed by one cell.
//
// A hunting pursuer heads for where it predicts the player will be next. A
// fleeing pursuer heads for the point mirrored away from the player. Pursuers
// with no route stay put.
func AdvancePursuers(ps []Pursuer, player Position, b *Board, fleeing bool, level int, now time.Time, rules Rules) {
	interval := rules.PursuerInterval(level)
	for i := range ps {
		p := &ps[i]
		if now.Sub(p.LastMove) < interval {
			continue
		}

		p.Memory.Observe(player, now)
		target := p.target(player, b, fleeing)

		path := FindPath(p.Pos, target, b, &p.Memory)
		if len(path) > 0 {
			from := p.Pos
			p.Pos = path[0]
			if !fleeing && len(path) <= 3 {
				if d, ok := directionBetween(from, p.Pos); ok {
					p.Memory.Reinforce(d)
				}
			}
		}
		p.LastMove = now
	}
}

// target picks the cell the pursuer should walk toward this step.
func (p *Pursuer) target(player Position, b *Board, fleeing bool) Position {
	if fleeing {
		x, y := b.Interior().ClampPoint(2*p.Pos.X-player.X, 2*p.Pos.Y-player.Y)
		return Position{X: x, Y: y}
	}
	prev, last, ok := p.Memory.lastTwo()
	if !ok {
		return player
	}
	x, y := b.Bounds().ClampPoint(2*last.X-prev.X, 2*last.Y-prev.Y)
	return Position{X: x, Y: y}
}
