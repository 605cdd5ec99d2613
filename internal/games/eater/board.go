package eater

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/eaterai/internal/core"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPip
)

// Reference board dimensions.
const (
	DefaultWidth  = 21
	DefaultHeight = 15

	// MinBoardSize keeps the player start cluster and pursuer home inside the border.
	MinBoardSize = 5
)

// wallChance is the probability that a free interior cell becomes a wall.
const wallChance = 0.15

// PlayerStart is where the player enters each level and respawns after a hit.
var PlayerStart = Position{X: 1, Y: 1}

// Board owns the cell grid and a running count of pips left on it.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major
	pips   int
}

// NewBoard returns a board of the given size with every cell empty.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Generate builds a maze for one level and returns it with the positions of
// every pip placed on it.
//
// The border is solid wall, interior cells on the 4x4 lattice are walls, the
// rest are walls with probability 0.15 and pips otherwise. The player start
// cluster and the pursuer home are always cleared.
func Generate(width, height int, rng *rand.Rand) (*Board, []Position) {
	b := NewBoard(width, height)
	var pips []Position

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case x == 0 || x == width-1 || y == 0 || y == height-1:
				b.set(p, CellWall)
			case x%4 == 0 && y%4 == 0:
				b.set(p, CellWall)
			case rng.Float64() < wallChance:
				b.set(p, CellWall)
			default:
				b.set(p, CellPip)
				pips = append(pips, p)
			}
		}
	}

	for _, p := range clearedCells(width, height) {
		if !b.InBounds(p) {
			continue
		}
		b.set(p, CellEmpty)
		pips = removePosition(pips, p)
	}

	return b, pips
}

// clearedCells lists the cells forced empty on every generated board.
func clearedCells(width, height int) []Position {
	return []Position{
		PlayerStart,
		{X: PlayerStart.X + 1, Y: PlayerStart.Y},
		{X: PlayerStart.X, Y: PlayerStart.Y + 1},
		HomeFor(width, height),
	}
}

// HomeFor returns the pursuer home cell for a board of the given size.
func HomeFor(width, height int) Position {
	return Position{X: width - 2, Y: height - 2}
}

func removePosition(list []Position, p Position) []Position {
	for i, q := range list {
		if q == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// ParseBoard builds a board from text rows: '#' is a wall, '.' a pip and
// anything else an empty cell. All rows must have the same length.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("eater: empty board layout")
	}
	width := len(rows[0])
	b := NewBoard(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("eater: row %d has width %d, expected %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				b.set(Position{X: x, Y: y}, CellWall)
			case '.':
				b.set(Position{X: x, Y: y}, CellPip)
			}
		}
	}
	return b, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Bounds returns the full grid area.
func (b *Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

// Interior returns the grid area inside the border.
func (b *Board) Interior() core.Rect {
	return b.Bounds().Inset(1)
}

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Position) bool {
	return b.Bounds().Contains(p.X, p.Y)
}

// Walkable reports whether p is on the grid and not a wall.
func (b *Board) Walkable(p Position) bool {
	return b.InBounds(p) && b.cells[b.index(p)] != CellWall
}

// At returns the cell at p. Reading outside the grid is a programming error.
func (b *Board) At(p Position) Cell {
	return b.cells[b.index(p)]
}

// Pips returns the number of pips still on the board.
func (b *Board) Pips() int { return b.pips }

// Eat turns the pip at p into an empty cell. Returns false when p holds no pip.
func (b *Board) Eat(p Position) bool {
	if !b.InBounds(p) || b.At(p) != CellPip {
		return false
	}
	b.set(p, CellEmpty)
	return true
}

// Cells returns a row-major copy of the grid.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Board) set(p Position, c Cell) {
	i := b.index(p)
	if b.cells[i] == CellPip {
		b.pips--
	}
	if c == CellPip {
		b.pips++
	}
	b.cells[i] = c
}

func (b *Board) index(p Position) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("eater: cell %v outside %dx%d board", p, b.width, b.height))
	}
	return p.Y*b.width + p.X
}

// emptyInteriorCells lists empty cells inside the border in row order.
func (b *Board) emptyInteriorCells() []Position {
	var out []Position
	in := b.Interior()
	for y := in.Y; y < in.Bottom(); y++ {
		for x := in.X; x < in.Right(); x++ {
			p := Position{X: x, Y: y}
			if b.At(p) == CellEmpty {
				out = append(out, p)
			}
		}
	}
	return out
}
