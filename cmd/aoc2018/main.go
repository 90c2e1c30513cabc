// Command aoc2018 runs the solutions to the 2018 Advent of Code puzzles.
//
// Every solver method carries its puzzle's sample in its doc comment; the
// sample runs first and must produce the wanted answer.
package main

import (
	"embed"

	aoc "github.com/maisem/aoc2018"
)

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	aoc.Run(2018, source, &solver{})
}
