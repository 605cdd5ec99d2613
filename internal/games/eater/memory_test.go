package eater

import (
	"testing"
	"time"
)

func TestMemorySightingsEvictOldest(t *testing.T) {
	var m Memory
	base := time.Unix(0, 0)
	for i := 0; i < 200; i++ {
		m.Observe(Position{X: i, Y: 0}, base.Add(time.Duration(i)*time.Millisecond))
		if m.SightingCount() > SightingCapacity {
			t.Fatalf("after %d observations log holds %d", i+1, m.SightingCount())
		}
	}

	got := m.Sightings()
	if len(got) != SightingCapacity {
		t.Fatalf("len = %d, want %d", len(got), SightingCapacity)
	}
	if got[0].Pos.X != 150 || got[len(got)-1].Pos.X != 199 {
		t.Errorf("log spans %v..%v, want x=150..199", got[0].Pos, got[len(got)-1].Pos)
	}

	prev, last, ok := m.lastTwo()
	if !ok || prev.X != 198 || last.X != 199 {
		t.Errorf("lastTwo = %v %v %v", prev, last, ok)
	}
}

func TestMemoryLastTwoNeedsTwoSightings(t *testing.T) {
	var m Memory
	if _, _, ok := m.lastTwo(); ok {
		t.Error("lastTwo on empty memory reported ok")
	}
	m.Observe(Position{X: 1, Y: 1}, time.Now())
	if _, _, ok := m.lastTwo(); ok {
		t.Error("lastTwo with one sighting reported ok")
	}
}

func TestMemoryHuntRingIsBounded(t *testing.T) {
	var m Memory
	for i := 0; i < HuntCapacity; i++ {
		m.Reinforce(DirUp)
	}
	if m.Successes(DirUp) != HuntCapacity {
		t.Fatalf("Successes(up) = %d", m.Successes(DirUp))
	}

	for i := 0; i < HuntCapacity; i++ {
		m.Reinforce(DirLeft)
	}
	if m.HuntCount() != HuntCapacity {
		t.Errorf("HuntCount() = %d, want %d", m.HuntCount(), HuntCapacity)
	}
	if m.Successes(DirUp) != 0 || m.Successes(DirLeft) != HuntCapacity {
		t.Errorf("up=%d left=%d, want 0 and %d", m.Successes(DirUp), m.Successes(DirLeft), HuntCapacity)
	}

	m.Reinforce(DirRight)
	if m.Successes(DirLeft) != HuntCapacity-1 || m.Successes(DirRight) != 1 {
		t.Errorf("left=%d right=%d after one more", m.Successes(DirLeft), m.Successes(DirRight))
	}
}

func TestMemoryRankDirections(t *testing.T) {
	var m Memory
	m.Reinforce(DirLeft)
	m.Reinforce(DirLeft)
	m.Reinforce(DirDown)

	dirs := searchOrder
	m.rankDirections(dirs[:])

	want := [4]Direction{DirLeft, DirDown, DirUp, DirRight}
	if dirs != want {
		t.Errorf("rankDirections = %v, want %v", dirs, want)
	}
}
