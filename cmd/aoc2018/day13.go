package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day13"
)

/*
want=7,3

/->-\
|   |  /----\
| /-+--+-\  |
| | |  | v  |
\-+-/  \-+--/
  \------/
*/
func (s solver) D13p1() any {
	m := aoc.MustGet(day13.Parse(s.Lines()))
	return aoc.MustGet(m.FirstCrash())
}

/*
want=6,4

/>-<\
|   |
| /<+-\
| | | v
\>+</ |
  |   ^
  \<->/
*/
func (s solver) D13p2() any {
	m := aoc.MustGet(day13.Parse(s.Lines()))
	p := aoc.MustGet(m.LastCart())
	s.Debugf("last cart standing after %d ticks", m.Ticks)
	return p
}
