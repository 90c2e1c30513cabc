package main

import (
	"strings"

	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day09"
)

func (s solver) game() day09.Game {
	return aoc.MustGet(day09.ParseGame(strings.TrimSpace(string(s.Input()))))
}

/*
want=8317

10 players; last marble is worth 1618 points
*/
func (s solver) D9p1() any {
	return s.game().HighScore()
}

func (s solver) D9p2() any {
	g := s.game()
	g.LastMarble *= 100
	return g.HighScore()
}
