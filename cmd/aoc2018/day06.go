package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day06"
)

/*
want=17

1, 1
1, 6
8, 3
3, 4
5, 5
8, 9
*/
func (s solver) D6p1() any {
	return day06.LargestFiniteArea(aoc.MustGet(day06.ParseSites(s.Lines())))
}

// want=16
func (s solver) D6p2() any {
	limit := 10000
	if s.SampleMode {
		limit = 32
	}
	return day06.SafeRegionSize(aoc.MustGet(day06.ParseSites(s.Lines())), limit)
}
