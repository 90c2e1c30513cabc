package main

import (
	"fmt"

	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day11"
)

func (s solver) fuelGrid() *day11.Grid {
	return day11.NewGrid(aoc.MustGet(day11.ParseSerial(string(s.Input()))))
}

/*
want=33,45

18
*/
func (s solver) D11p1() any {
	sq := s.fuelGrid().Best(3)
	return fmt.Sprintf("%d,%d", sq.X, sq.Y)
}

// want=90,269,16
func (s solver) D11p2() any {
	sq := s.fuelGrid().BestAny()
	s.Debugf("best square has power %d", sq.Power)
	return fmt.Sprintf("%d,%d,%d", sq.X, sq.Y, sq.Size)
}
