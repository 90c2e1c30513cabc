// Package day12 solves "Subterranean Sustainability": a one dimensional
// cellular automaton of potted plants.
package day12

import (
	"errors"
	"fmt"
	"strings"

	"tailscale.com/util/deephash"
)

var (
	ErrBadInput  = errors.New("malformed input")
	ErrEmptyRule = errors.New(`rule "....." => "#" grows plants forever`)
)

// Rules maps every 5-pot window, read as bits with '#' as 1 and the leftmost
// pot as the high bit, to whether the middle pot has a plant next.
type Rules [32]bool

func window(s string) (int, bool) {
	if len(s) != 5 {
		return 0, false
	}
	w := 0
	for i := 0; i < 5; i++ {
		w <<= 1
		switch s[i] {
		case '#':
			w |= 1
		case '.':
		default:
			return 0, false
		}
	}
	return w, true
}

func validPots(s string) bool {
	return strings.Trim(s, "#.") == ""
}

// State is a row of pots. Plants holds the pots from the first to the last
// one with a plant; Offset is the number of the first of them. A row with
// no plants has Offset 0.
type State struct {
	Plants     string
	Offset     int
	Generation int
}

func newState(pots string, offset, gen int) State {
	first := strings.IndexByte(pots, '#')
	if first == -1 {
		return State{Generation: gen}
	}
	last := strings.LastIndexByte(pots, '#')
	return State{Plants: pots[first : last+1], Offset: offset + first, Generation: gen}
}

// Parse reads the "initial state: " line, a blank line and the
// "LLCRR => N" rules. Windows without a rule produce an empty pot.
func Parse(lines []string) (State, Rules, error) {
	var rules Rules
	if len(lines) < 2 || lines[1] != "" {
		return State{}, rules, fmt.Errorf("%w: want initial state and a blank line", ErrBadInput)
	}
	pots, ok := strings.CutPrefix(lines[0], "initial state: ")
	if !ok || !validPots(pots) {
		return State{}, rules, fmt.Errorf("%w: bad initial state %q", ErrBadInput, lines[0])
	}
	for i, l := range lines[2:] {
		if l == "" {
			continue
		}
		from, to, ok := strings.Cut(l, " => ")
		w, wok := window(from)
		if !ok || !wok || (to != "#" && to != ".") {
			return State{}, rules, fmt.Errorf("%w: line %d: bad rule %q", ErrBadInput, i+3, l)
		}
		if w == 0 && to == "#" {
			return State{}, rules, ErrEmptyRule
		}
		rules[w] = to == "#"
	}
	return newState(pots, 0, 0), rules, nil
}

// Next returns the following generation.
func (s State) Next(r *Rules) State {
	padded := "...." + s.Plants + "...."
	out := make([]byte, len(padded)-4)
	w := 0
	for i := 0; i < len(padded); i++ {
		w = (w<<1)&31 | btoi(padded[i] == '#')
		if i < 4 {
			continue
		}
		out[i-4] = '.'
		if r[w] {
			out[i-4] = '#'
		}
	}
	// out[0] is the pot two to the left of the first plant.
	return newState(string(out), s.Offset-2, s.Generation+1)
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Value is the sum of the numbers of the pots with plants.
func (s State) Value() int {
	v := 0
	for i := 0; i < len(s.Plants); i++ {
		if s.Plants[i] == '#' {
			v += s.Offset + i
		}
	}
	return v
}

var hashPlants = deephash.HasherForType[string]()

// ValueAt returns the value of the state after n generations in total.
//
// Once a plant pattern comes back, the generations in between repeat
// forever, each lap sliding the row by the same number of pots, so the
// state at n is taken from the first lap and shifted.
func ValueAt(s State, r *Rules, n int) int {
	seen := make(map[deephash.Sum]int) // pattern to index in history
	var history []State
	for s.Generation < n {
		h := hashPlants(&s.Plants)
		if i, ok := seen[h]; ok {
			first := history[i]
			period := s.Generation - first.Generation
			laps, rest := (n-first.Generation)/period, (n-first.Generation)%period
			at := history[i+rest]
			at.Offset += laps * (s.Offset - first.Offset)
			at.Generation = n
			return at.Value()
		}
		seen[h] = len(history)
		history = append(history, s)
		s = s.Next(r)
	}
	return s.Value()
}
