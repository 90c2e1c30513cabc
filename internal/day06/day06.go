// Package day06 solves "Chronal Coordinates": Manhattan-distance Voronoi
// areas around a set of sites.
package day06

import (
	"errors"
	"fmt"

	aoc "github.com/maisem/aoc2018"
)

var ErrNoSites = errors.New("no sites")

// ParseSites parses one "X, Y" site per line.
func ParseSites(lines []string) ([]aoc.Pt, error) {
	var out []aoc.Pt
	for i, l := range lines {
		if l == "" {
			continue
		}
		v, err := aoc.IntsInN(l, 2)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, aoc.Pt{X: v[0], Y: v[1]})
	}
	if len(out) == 0 {
		return nil, ErrNoSites
	}
	return out, nil
}

// Nearest returns the index of the site closest to p, or -1 if two or more
// sites are equally close.
func Nearest(p aoc.Pt, sites []aoc.Pt) int {
	best, bestDist := -1, -1
	for i, s := range sites {
		d := p.MDist(s)
		switch {
		case bestDist == -1 || d < bestDist:
			best, bestDist = i, d
		case d == bestDist:
			best = -1
		}
	}
	return best
}

// LargestFiniteArea returns the size of the largest area that does not
// extend to infinity. An area is infinite when it owns a cell on the edge of
// the sites' bounding box.
func LargestFiniteArea(sites []aoc.Pt) int {
	lo, hi := aoc.Bounds(sites)
	areas := make([]int, len(sites))
	infinite := make([]bool, len(sites))
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			n := Nearest(aoc.Pt{X: x, Y: y}, sites)
			if n == -1 {
				continue
			}
			areas[n]++
			if x == lo.X || x == hi.X || y == lo.Y || y == hi.Y {
				infinite[n] = true
			}
		}
	}
	best := 0
	for i, a := range areas {
		if !infinite[i] {
			best = max(best, a)
		}
	}
	return best
}

// SafeRegionSize counts the cells whose total distance to all sites is less
// than limit.
func SafeRegionSize(sites []aoc.Pt, limit int) int {
	lo, hi := aoc.Bounds(sites)
	// A cell m steps outside the box is at least m away from every site.
	pad := limit/len(sites) + 1
	n := 0
	for y := lo.Y - pad; y <= hi.Y+pad; y++ {
		for x := lo.X - pad; x <= hi.X+pad; x++ {
			p := aoc.Pt{X: x, Y: y}
			total := 0
			for _, s := range sites {
				if total += p.MDist(s); total >= limit {
					break
				}
			}
			if total < limit {
				n++
			}
		}
	}
	return n
}
