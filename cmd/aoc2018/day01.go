package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day01"
)

func (s solver) changes() []int {
	return aoc.MustGet(day01.ParseChanges(s.Lines()))
}

/*
want=3

+1
-2
+3
+1
*/
func (s solver) D1p1() any {
	return day01.Resulting(s.changes())
}

// want=2
func (s solver) D1p2() any {
	return aoc.MustGet(day01.FirstRepeat(s.changes()))
}
