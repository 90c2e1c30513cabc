// Package day02 solves "Inventory Management System".
package day02

import "errors"

var ErrNoMatch = errors.New("no two ids differ by exactly one letter")

func letterCounts(id string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range id {
		counts[r]++
	}
	return counts
}

func hasCount(counts map[rune]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

// Checksum multiplies the number of ids having some letter exactly twice
// by the number having some letter exactly three times.
func Checksum(ids []string) int {
	var twos, threes int
	for _, id := range ids {
		counts := letterCounts(id)
		if hasCount(counts, 2) {
			twos++
		}
		if hasCount(counts, 3) {
			threes++
		}
	}
	return twos * threes
}

// CommonLetters finds the first pair of ids of equal length that differ in
// exactly one position and returns the letters they share.
func CommonLetters(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if pos, ok := singleDiff(a, b); ok {
				return a[:pos] + a[pos+1:], nil
			}
		}
	}
	return "", ErrNoMatch
}

func singleDiff(a, b string) (pos int, ok bool) {
	if len(a) != len(b) {
		return 0, false
	}
	pos = -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if pos != -1 {
			return 0, false
		}
		pos = i
	}
	return pos, pos != -1
}
