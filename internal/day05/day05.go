// Package day05 solves "Alchemical Reduction": units of the same type and
// opposite polarity annihilate when adjacent.
package day05

import (
	aoc "github.com/maisem/aoc2018"
)

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isLetter(c byte) bool {
	return lower(c) >= 'a' && lower(c) <= 'z'
}

// CanReact reports whether a and b are the same letter in different case.
func CanReact(a, b byte) bool {
	return a != b && isLetter(a) && lower(a) == lower(b)
}

// Reduce fully reacts polymer. Each unit either cancels the unit on top of
// the stack or is pushed onto it, so the result does not depend on the
// order in which pairs would be removed by hand.
func Reduce(polymer string) string {
	return string(reduce(polymer, 0))
}

// reduce is Reduce skipping every unit of type skip (lower case, 0 for
// none).
func reduce(polymer string, skip byte) []byte {
	var s aoc.Stack[byte]
	for i := 0; i < len(polymer); i++ {
		c := polymer[i]
		if skip != 0 && lower(c) == skip {
			continue
		}
		if top, ok := s.Peek(); ok && CanReact(top, c) {
			s.Pop()
			continue
		}
		s.Push(c)
	}
	return s.Values()
}

// Shortest returns the length of the shortest polymer obtainable by
// removing all units of a single type and reducing the rest.
func Shortest(polymer string) int {
	// Removing a type commutes with reducing, so start from the reduced form.
	reduced := Reduce(polymer)
	best := len(reduced)
	for t := byte('a'); t <= 'z'; t++ {
		best = min(best, len(reduce(reduced, t)))
	}
	return best
}
