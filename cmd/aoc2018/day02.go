package main

import (
	"strings"

	aoc "github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/internal/day02"
)

// ids returns the box ids, skipping blank lines.
func (s solver) ids() []string {
	var ids []string
	s.ForLines(func(line string) {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	})
	return ids
}

/*
want=12

abcdef
bababc
abbcde
abcccd
aabcdd
abcdee
ababab
*/
func (s solver) D2p1() any {
	return day02.Checksum(s.ids())
}

/*
want=fgij

abcde
fghij
klmno
pqrst
fguij
axcye
wvxyz
*/
func (s solver) D2p2() any {
	return aoc.MustGet(day02.CommonLetters(s.ids()))
}
