package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day03"
)

/*
want=4

#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
*/
func (s solver) D3p1() any {
	claims := aoc.MustGet(day03.ParseClaims(s.Lines()))
	return day03.NewCloth(claims).OverlapArea()
}

// want=3
func (s solver) D3p2() any {
	claims := aoc.MustGet(day03.ParseClaims(s.Lines()))
	c := aoc.MustGet(day03.NonOverlapping(day03.NewCloth(claims), claims))
	return c.ID
}
