package main

import (
	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day12"
)

/*
want=325

initial state: #..#.#..##......###...###

...## => #
..#.. => #
.#... => #
.#.#. => #
.#.## => #
.##.. => #
.#### => #
#.#.# => #
#.### => #
##.#. => #
##.## => #
###.. => #
###.# => #
####. => #
*/
func (s solver) D12p1() any {
	st, rules := aoc.MustGet2(day12.Parse(s.Lines()))
	return day12.ValueAt(st, &rules, 20)
}

func (s solver) D12p2() any {
	st, rules := aoc.MustGet2(day12.Parse(s.Lines()))
	return day12.ValueAt(st, &rules, 50_000_000_000)
}
