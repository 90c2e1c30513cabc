package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day08"
)

func (s solver) license() *day08.Node {
	return aoc.MustGet(day08.Parse(string(s.Input())))
}

/*
want=138

2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2
*/
func (s solver) D8p1() any {
	return s.license().MetaSum()
}

// want=66
func (s solver) D8p2() any {
	return s.license().Value()
}
