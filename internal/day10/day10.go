// Package day10 solves "The Stars Align": moving points that briefly spell
// out a message.
package day10

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2018"
)

var ErrNoStars = errors.New("no stars")

// Star is a point of light moving at a fixed velocity.
type Star struct {
	Pos aoc.Pt
	Vel aoc.Pt
}

// At returns the star's position after t seconds.
func (s Star) At(t int) aoc.Pt {
	return s.Pos.Add(aoc.Pt{X: t * s.Vel.X, Y: t * s.Vel.Y})
}

// ParseStar parses "position=< 9,  1> velocity=< 0,  2>".
func ParseStar(line string) (Star, error) {
	if !strings.HasPrefix(line, "position=<") || !strings.Contains(line, "velocity=<") {
		return Star{}, fmt.Errorf("invalid star: %q", line)
	}
	v, err := aoc.IntsInN(line, 4)
	if err != nil {
		return Star{}, fmt.Errorf("invalid star: %w", err)
	}
	return Star{Pos: aoc.Pt{X: v[0], Y: v[1]}, Vel: aoc.Pt{X: v[2], Y: v[3]}}, nil
}

// ParseStars parses one star per line.
func ParseStars(lines []string) ([]Star, error) {
	var out []Star
	for i, l := range lines {
		if l == "" {
			continue
		}
		s, err := ParseStar(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoStars
	}
	return out, nil
}

func positions(stars []Star, t int) []aoc.Pt {
	out := make([]aoc.Pt, len(stars))
	for i, s := range stars {
		out[i] = s.At(t)
	}
	return out
}

func area(stars []Star, t int) int {
	lo, hi := aoc.Bounds(positions(stars, t))
	return (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1)
}

// Align advances the stars until their bounding box stops shrinking, and
// returns the picture at the smallest box along with the seconds it took.
func Align(stars []Star) (msg string, seconds int, err error) {
	if len(stars) == 0 {
		return "", 0, ErrNoStars
	}
	cur := area(stars, 0)
	for {
		next := area(stars, seconds+1)
		if next >= cur {
			break
		}
		cur = next
		seconds++
	}
	return aoc.Render(positions(stars, seconds), '#', '.'), seconds, nil
}
