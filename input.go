package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"
)

// maxLineSize bounds a single input line. Some puzzles put the whole input
// on one line.
const maxLineSize = 1 << 20

// FileLines returns the lines of the named file with their line terminators
// removed. Leading whitespace is kept since some inputs are drawings.
func FileLines(path string) ([]string, error) {
	b, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return splitLines(b)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("missing input file argument")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input: %w", err)
	}
	return b, nil
}

func splitLines(b []byte) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(bytes.NewReader(b))
	s.Buffer(nil, maxLineSize)
	for s.Scan() {
		line := s.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: not valid UTF-8", len(lines)+1)
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return lines, nil
}
