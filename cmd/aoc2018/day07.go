package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day07"
)

/*
want=CABDFE

Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
*/
func (s solver) D7p1() any {
	g := aoc.MustGet(day07.ParseGraph(s.Lines()))
	return aoc.MustGet(day07.Order(g))
}

// want=15
func (s solver) D7p2() any {
	workers, base := 5, 60
	if s.SampleMode {
		workers, base = 2, 0
	}
	g := aoc.MustGet(day07.ParseGraph(s.Lines()))
	res := aoc.MustGet(day07.Schedule(g, workers, base))
	s.Debugf("steps completed in order %s", res.Order)
	return res.Time
}
