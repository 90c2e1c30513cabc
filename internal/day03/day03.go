// Package day03 solves "No Matter How You Slice It": rectangular claims
// on a shared piece of fabric.
package day03

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2018"
)

var ErrNoIntactClaim = errors.New("every claim overlaps another")

// Claim is a rectangle of fabric; Left and Top are inclusive, Right and
// Bottom exclusive.
type Claim struct {
	ID            int
	Left, Top     int
	Right, Bottom int
}

// ParseClaim parses "#ID @ LEFT,TOP: WxH".
func ParseClaim(line string) (Claim, error) {
	if !strings.HasPrefix(line, "#") || !strings.Contains(line, " @ ") {
		return Claim{}, fmt.Errorf("invalid claim: %q", line)
	}
	v, err := aoc.IntsInN(line, 5)
	if err != nil {
		return Claim{}, fmt.Errorf("invalid claim: %w", err)
	}
	for _, n := range v {
		if n < 0 {
			return Claim{}, fmt.Errorf("invalid claim: %q", line)
		}
	}
	return Claim{
		ID:     v[0],
		Left:   v[1],
		Top:    v[2],
		Right:  v[1] + v[3],
		Bottom: v[2] + v[4],
	}, nil
}

func ParseClaims(lines []string) ([]Claim, error) {
	var out []Claim
	for i, l := range lines {
		if l == "" {
			continue
		}
		c, err := ParseClaim(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Cloth counts, per square inch, how many claims cover it.
type Cloth struct {
	coverage aoc.Grid[int]
}

// NewCloth lays every claim on a cloth just big enough for all of them.
func NewCloth(claims []Claim) *Cloth {
	var w, h int
	for _, c := range claims {
		w, h = max(w, c.Right), max(h, c.Bottom)
	}
	cl := &Cloth{coverage: aoc.MakeGrid[int](w, h)}
	for _, c := range claims {
		cl.forEach(c, func(p aoc.Pt) {
			cl.coverage[p.Y][p.X]++
		})
	}
	return cl
}

func (cl *Cloth) forEach(c Claim, f func(aoc.Pt)) {
	for y := c.Top; y < c.Bottom; y++ {
		for x := c.Left; x < c.Right; x++ {
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

// OverlapArea is the number of square inches covered by two or more claims.
func (cl *Cloth) OverlapArea() int {
	n := 0
	cl.coverage.ForEach(func(_ aoc.Pt, v int) {
		if v > 1 {
			n++
		}
	})
	return n
}

// Intact reports whether no other claim covers any part of c.
func (cl *Cloth) Intact(c Claim) bool {
	ok := true
	cl.forEach(c, func(p aoc.Pt) {
		if cl.coverage.At(p) != 1 {
			ok = false
		}
	})
	return ok
}

// NonOverlapping returns the first claim that does not overlap any other.
func NonOverlapping(cl *Cloth, claims []Claim) (Claim, error) {
	for _, c := range claims {
		if cl.Intact(c) {
			return c, nil
		}
	}
	return Claim{}, ErrNoIntactClaim
}
