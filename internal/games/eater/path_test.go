package eater

import (
	"math/rand"
	"testing"
)

// bfsDistance is a plain reference search returning -1 when unreachable.
func bfsDistance(b *Board, start, target Position) int {
	dist := map[Position]int{start: 0}
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return dist[cur]
		}
		for _, d := range searchOrder {
			next := cur.Add(d)
			if _, seen := dist[next]; seen || !b.Walkable(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func checkPath(t *testing.T, b *Board, start, target Position, path []Position) {
	t.Helper()
	prev := start
	for i, p := range path {
		if !b.Walkable(p) {
			t.Fatalf("step %d %v is not walkable", i, p)
		}
		if _, ok := directionBetween(prev, p); !ok {
			t.Fatalf("step %d %v is not adjacent to %v", i, p, prev)
		}
		prev = p
	}
	if len(path) > 0 && path[len(path)-1] != target {
		t.Fatalf("path ends at %v, want %v", path[len(path)-1], target)
	}
}

func TestFindPathShortest(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		b, _ := Generate(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))

		var mem Memory
		if seed%2 == 0 {
			mem.Reinforce(DirLeft)
			mem.Reinforce(DirLeft)
			mem.Reinforce(DirDown)
		}

		starts := []Position{PlayerStart, HomeFor(DefaultWidth, DefaultHeight)}
		for _, start := range starts {
			for y := 0; y < DefaultHeight; y++ {
				for x := 0; x < DefaultWidth; x++ {
					target := Position{X: x, Y: y}
					if target == start {
						continue
					}
					path := FindPath(start, target, b, &mem)
					want := bfsDistance(b, start, target)

					if want < 0 {
						if path != nil {
							t.Fatalf("seed %d: %v->%v unreachable but got %v", seed, start, target, path)
						}
						continue
					}
					if len(path) != want {
						t.Fatalf("seed %d: %v->%v length %d, want %d", seed, start, target, len(path), want)
					}
					checkPath(t, b, start, target, path)
				}
			}
		}
	}
}

func TestFindPathNoRoute(t *testing.T) {
	b, _ := ParseBoard(
		"#######",
		"#  #  #",
		"#  #  #",
		"#######",
	)
	start := Position{X: 1, Y: 1}

	tests := []struct {
		name   string
		target Position
	}{
		{"enclosed", Position{X: 5, Y: 2}},
		{"wall", Position{X: 3, Y: 1}},
		{"off grid", Position{X: 10, Y: 1}},
		{"same cell", start},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if path := FindPath(start, tt.target, b, nil); path != nil {
				t.Errorf("FindPath = %v, want nil", path)
			}
		})
	}
}

func TestFindPathTieBreak(t *testing.T) {
	b, _ := ParseBoard(
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	)
	start := Position{X: 1, Y: 1}
	target := Position{X: 3, Y: 3}

	var fresh Memory
	path := FindPath(start, target, b, &fresh)
	if len(path) != 4 || path[0] != (Position{X: 2, Y: 1}) {
		t.Fatalf("default order path = %v, want first step right", path)
	}

	var biased Memory
	biased.Reinforce(DirDown)
	path = FindPath(start, target, b, &biased)
	if len(path) != 4 || path[0] != (Position{X: 1, Y: 2}) {
		t.Fatalf("biased path = %v, want first step down", path)
	}
}
