// Package day09 solves "Marble Mania": elves placing marbles in a circle.
package day09

import (
	"fmt"

	aoc "github.com/maisem/aoc2018"
)

// Game is a marble game setup.
type Game struct {
	Players    int
	LastMarble int
}

// ParseGame parses "N players; last marble is worth M points".
func ParseGame(s string) (Game, error) {
	var g Game
	if _, err := fmt.Sscanf(s, "%d players; last marble is worth %d points", &g.Players, &g.LastMarble); err != nil {
		return Game{}, fmt.Errorf("invalid game %q: %w", s, err)
	}
	if g.Players < 1 || g.LastMarble < 0 {
		return Game{}, fmt.Errorf("invalid game %q", s)
	}
	return g, nil
}

// HighScore plays the game and returns the winning elf's score.
//
// Marble k is normally placed between the marbles 1 and 2 clockwise of the
// current one. Multiples of 23 are kept instead, and the player also takes
// the marble 7 counter-clockwise of the current one; the marble after it
// becomes current.
func (g Game) HighScore() int {
	scores := make([]int, g.Players)
	r := aoc.NewRing(0, g.LastMarble)
	for k := 1; k <= g.LastMarble; k++ {
		if k%23 != 0 {
			r.Move(1)
			r.Insert(k)
			continue
		}
		r.Move(-7)
		scores[(k-1)%g.Players] += k + r.Remove()
	}
	best := 0
	for _, s := range scores {
		best = max(best, s)
	}
	return best
}
