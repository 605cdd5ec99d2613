package eater

// FindPath returns a shortest 4-connected route from start to target, excluding
// start and including target. It returns nil when the target is a wall, cannot
// be reached, or equals start.
//
// Among equally short routes, the one found first by expanding directions in
// the memory's order of past hunting success is returned.
func FindPath(start, target Position, b *Board, mem *Memory) []Position {
	if start == target || !b.InBounds(start) || !b.Walkable(target) {
		return nil
	}

	// Success counts are fixed for the duration of a search.
	dirs := searchOrder
	if mem != nil {
		mem.rankDirections(dirs[:])
	}

	parent := make([]int, b.width*b.height)
	for i := range parent {
		parent[i] = -1
	}
	startIdx := b.index(start)
	parent[startIdx] = startIdx

	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == target {
			return tracePath(parent, b, startIdx, cur)
		}

		for _, d := range dirs {
			next := cur.Add(d)
			if !b.Walkable(next) {
				continue
			}
			ni := b.index(next)
			if parent[ni] != -1 {
				continue
			}
			parent[ni] = b.index(cur)
			queue = append(queue, next)
		}
	}

	return nil
}

// tracePath walks parent links back from end and returns the route in order.
func tracePath(parent []int, b *Board, startIdx int, end Position) []Position {
	var rev []Position
	for i := b.index(end); i != startIdx; i = parent[i] {
		rev = append(rev, Position{X: i % b.width, Y: i / b.width})
	}
	path := make([]Position, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
