package main

import (
	"strings"

	"github.com/maisem/aoc2018/internal/day05"
)

func (s solver) polymer() string {
	return strings.TrimSpace(string(s.Input()))
}

/*
want=10

dabAcCaCBAcCcaDA
*/
func (s solver) D5p1() any {
	return len(day05.Reduce(s.polymer()))
}

// want=4
func (s solver) D5p2() any {
	return day05.Shortest(s.polymer())
}
