package eater

import (
	"sort"
	"time"
)

const (
	// SightingCapacity bounds the rolling log of observed player positions.
	SightingCapacity = 50

	// HuntCapacity bounds the reinforced-direction log. Older successes are
	// evicted first, so tie-break bias tracks recent play.
	HuntCapacity = 64
)

// Sighting is one observation of the player.
type Sighting struct {
	Pos Position
	At  time.Time
}

// Memory is what a pursuer learns about the player during a level.
type Memory struct {
	sightings []Sighting

	hunts     [HuntCapacity]Direction
	huntNext  int
	huntLen   int
	huntCount [4]int
}

// Observe records a player position, evicting the oldest sighting when full.
func (m *Memory) Observe(p Position, at time.Time) {
	if len(m.sightings) == SightingCapacity {
		copy(m.sightings, m.sightings[1:])
		m.sightings = m.sightings[:SightingCapacity-1]
	}
	m.sightings = append(m.sightings, Sighting{Pos: p, At: at})
}

// Sightings returns a copy of the observation log, oldest first.
func (m *Memory) Sightings() []Sighting {
	out := make([]Sighting, len(m.sightings))
	copy(out, m.sightings)
	return out
}

// SightingCount returns the number of logged player positions.
func (m *Memory) SightingCount() int {
	return len(m.sightings)
}

// lastTwo returns the two most recent sightings.
func (m *Memory) lastTwo() (prev, last Position, ok bool) {
	n := len(m.sightings)
	if n < 2 {
		return Position{}, Position{}, false
	}
	return m.sightings[n-2].Pos, m.sightings[n-1].Pos, true
}

// Reinforce records a step that brought the pursuer close to its prey.
func (m *Memory) Reinforce(d Direction) {
	if m.huntLen == HuntCapacity {
		m.huntCount[m.hunts[m.huntNext]]--
	} else {
		m.huntLen++
	}
	m.hunts[m.huntNext] = d
	m.huntCount[d]++
	m.huntNext = (m.huntNext + 1) % HuntCapacity
}

// Successes returns how many logged hunts used direction d.
func (m *Memory) Successes(d Direction) int {
	return m.huntCount[d]
}

// HuntCount returns the number of logged hunts.
func (m *Memory) HuntCount() int {
	return m.huntLen
}

// rankDirections stably reorders dirs by descending success count.
func (m *Memory) rankDirections(dirs []Direction) {
	if m.huntLen == 0 {
		return
	}
	sort.SliceStable(dirs, func(i, j int) bool {
		return m.huntCount[dirs[i]] > m.huntCount[dirs[j]]
	})
}
