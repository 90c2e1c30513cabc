package aoc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Itoa formats v in base 10.
func Itoa[T constraints.Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

var intRx = regexp.MustCompile(`[-+]?\d+`)

// IntsIn returns every integer written in s, ignoring the text around
// them. "position=< 3,-2>" yields [3 -2].
func IntsIn(s string) []int {
	return Ints(intRx.FindAllString(s, -1)...)
}

// IntsInN is IntsIn for lines that must hold exactly n integers.
func IntsInN(s string, n int) ([]int, error) {
	v := IntsIn(s)
	if len(v) != n {
		return nil, fmt.Errorf("%q: found %d numbers; want %d", s, len(v), n)
	}
	return v, nil
}
