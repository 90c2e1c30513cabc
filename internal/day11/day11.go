// Package day11 solves "Chronal Charge": finding the most powerful square
// of fuel cells.
package day11

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is the width and height of the fuel cell grid.
const Size = 300

// PowerLevel is the power of the fuel cell at x,y (1-based) for a grid
// serial number.
func PowerLevel(x, y, serial int) int {
	rack := x + 10
	p := (rack*y + serial) * rack
	return (p/100)%10 - 5
}

// ParseSerial parses the puzzle input.
func ParseSerial(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid serial number: %w", err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid serial number %d: must not be negative", v)
	}
	return v, nil
}

// Grid is a summed-area table of power levels: sum[y][x] is the total power
// of the cells in [1,x]×[1,y].
type Grid struct {
	sum [Size + 1][Size + 1]int
}

func NewGrid(serial int) *Grid {
	g := new(Grid)
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			g.sum[y][x] = PowerLevel(x, y, serial) + g.sum[y-1][x] + g.sum[y][x-1] - g.sum[y-1][x-1]
		}
	}
	return g
}

// Square returns the total power of the size×size square whose top-left
// cell is x,y.
func (g *Grid) Square(x, y, size int) int {
	x0, y0, x1, y1 := x-1, y-1, x+size-1, y+size-1
	return g.sum[y1][x1] - g.sum[y0][x1] - g.sum[y1][x0] + g.sum[y0][x0]
}

// Square is a square of fuel cells and its total power.
type Square struct {
	X, Y, Size int
	Power      int
}

// Best returns the size×size square with the most power. Ties go to the
// first square in reading order.
func (g *Grid) Best(size int) Square {
	best := Square{Power: math.MinInt}
	for y := 1; y+size-1 <= Size; y++ {
		for x := 1; x+size-1 <= Size; x++ {
			if p := g.Square(x, y, size); p > best.Power {
				best = Square{X: x, Y: y, Size: size, Power: p}
			}
		}
	}
	return best
}

// BestAny returns the square of any size with the most power. Ties go to
// the smallest size.
func (g *Grid) BestAny() Square {
	best := g.Best(1)
	for size := 2; size <= Size; size++ {
		if sq := g.Best(size); sq.Power > best.Power {
			best = sq
		}
	}
	return best
}
