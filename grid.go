package aoc

import (
	"strings"

	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// In reports whether p is inside the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid turns lines into a byte grid. Short lines are padded with
// spaces up to the longest one.
func ParseGrid(lines []string) Grid[byte] {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	g := MakeGrid[byte](w, len(lines))
	for y, l := range lines {
		n := copy(g[y], l)
		for x := n; x < w; x++ {
			g[y][x] = ' '
		}
	}
	return g
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell, row by row.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// ParseDirection maps the arrow characters ^ > v < to a Direction.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return Itoa(p.X) + "," + Itoa(p.Y)
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// Step returns the neighbor of p in direction d. Up is towards smaller Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// ReadingLess orders points top to bottom, then left to right.
func (p Pt2[T]) ReadingLess(q Pt2[T]) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Bounds returns the smallest and largest coordinates of pts. It panics if
// pts is empty.
func Bounds[T constraints.Signed](pts []Pt2[T]) (lo, hi Pt2[T]) {
	if len(pts) == 0 {
		panic("aoc: Bounds of no points")
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}

// Render draws pts over their bounding box, one row per line, using on for
// points and off for empty cells.
func Render[T constraints.Signed](pts []Pt2[T], on, off byte) string {
	lo, hi := Bounds(pts)
	g := MakeGrid[byte](int(hi.X-lo.X)+1, int(hi.Y-lo.Y)+1)
	for _, row := range g {
		for x := range row {
			row[x] = off
		}
	}
	for _, p := range pts {
		g[int(p.Y-lo.Y)][int(p.X-lo.X)] = on
	}
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
