// Package day01 solves "Chronal Calibration": a frequency that drifts by a
// repeating list of changes.
package day01

import (
	"errors"
	"fmt"
	"strconv"

	aoc "github.com/maisem/aoc2018"
)

// ErrNoRepeat means no frequency is ever reached twice.
var ErrNoRepeat = errors.New("no frequency repeats")

// ParseChange parses a signed change such as "+3" or "-12".
func ParseChange(line string) (int, error) {
	if len(line) < 2 || line[1] < '0' || line[1] > '9' {
		return 0, fmt.Errorf("bad change %q", line)
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return 0, fmt.Errorf("bad change %q: %w", line, err)
	}
	switch line[0] {
	case '+':
		return n, nil
	case '-':
		return -n, nil
	}
	return 0, fmt.Errorf("bad change %q: unexpected sign %q", line, line[0])
}

// ParseChanges parses one change per line, skipping blank lines.
func ParseChanges(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		if l == "" {
			continue
		}
		c, err := ParseChange(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Resulting returns the frequency after applying every change once.
func Resulting(changes []int) int {
	return aoc.Sum(changes...)
}

// FirstRepeat cycles through changes, starting at 0, and returns the first
// frequency reached twice.
func FirstRepeat(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, ErrNoRepeat
	}
	if drift := Resulting(changes); drift != 0 && !canRepeat(changes, drift) {
		return 0, ErrNoRepeat
	}
	seen := map[int]bool{0: true}
	freq := 0
	for {
		for _, c := range changes {
			freq += c
			if seen[freq] {
				return freq, nil
			}
			seen[freq] = true
		}
	}
}

// canRepeat reports whether two of the frequencies visited during the first
// pass agree modulo drift; every later pass shifts them all by drift, so
// nothing else can ever collide.
func canRepeat(changes []int, drift int) bool {
	m := aoc.AbsDiff(drift, 0)
	seen := make(map[int]bool, len(changes))
	freq := 0
	for _, c := range changes {
		r := ((freq % m) + m) % m
		if seen[r] {
			return true
		}
		seen[r] = true
		freq += c
	}
	return false
}
