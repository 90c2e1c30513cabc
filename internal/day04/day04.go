// Package day04 solves "Repose Record": guards falling asleep on shift.
package day04

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/maps"
)

type Action int

const (
	BeginsShift Action = iota
	FallsAsleep
	WakesUp
)

// Entry is one line of the log.
type Entry struct {
	Time   time.Time
	Action Action
	Guard  int // only set for BeginsShift
}

const stampLayout = "2006-01-02 15:04"

// ParseEntry parses "[1518-11-01 00:05] falls asleep" and friends.
func ParseEntry(line string) (Entry, error) {
	if len(line) < 19 || line[0] != '[' || line[17] != ']' {
		return Entry{}, fmt.Errorf("invalid log entry: %q", line)
	}
	ts, err := time.Parse(stampLayout, line[1:17])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid log entry %q: %w", line, err)
	}
	e := Entry{Time: ts}
	switch rest := line[19:]; rest {
	case "falls asleep":
		e.Action = FallsAsleep
	case "wakes up":
		e.Action = WakesUp
	default:
		var tail string
		if n, _ := fmt.Sscanf(rest, "Guard #%d begins %s", &e.Guard, &tail); n != 2 || tail != "shift" {
			return Entry{}, fmt.Errorf("invalid log action: %q", rest)
		}
		e.Action = BeginsShift
	}
	return e, nil
}

func ParseEntries(lines []string) ([]Entry, error) {
	var out []Entry
	for i, l := range lines {
		if l == "" {
			continue
		}
		e, err := ParseEntry(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Histogram counts, per minute of the midnight hour, how often a guard was
// asleep.
type Histogram [60]int

// Add records sleep from start up to, not including, end.
func (h *Histogram) Add(start, end int) {
	for m := start; m < end; m++ {
		h[m]++
	}
}

func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Mode returns the minute slept most often and its count. The earliest
// minute wins ties.
func (h *Histogram) Mode() (minute, count int) {
	for m, c := range h {
		if c > count {
			minute, count = m, c
		}
	}
	return minute, count
}

// SleepTimes sorts the entries by time and builds each guard's histogram.
func SleepTimes(entries []Entry) (map[int]*Histogram, error) {
	entries = slices.Clone(entries)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Time.Compare(b.Time)
	})
	out := make(map[int]*Histogram)
	guard, asleep := -1, -1
	for _, e := range entries {
		switch e.Action {
		case BeginsShift:
			guard, asleep = e.Guard, -1
		case FallsAsleep:
			if guard == -1 {
				return nil, fmt.Errorf("%v: asleep before any shift", e.Time)
			}
			asleep = e.Time.Minute()
		case WakesUp:
			if asleep == -1 {
				return nil, fmt.Errorf("%v: guard #%d wakes up without falling asleep", e.Time, guard)
			}
			h, ok := out[guard]
			if !ok {
				h = new(Histogram)
				out[guard] = h
			}
			h.Add(asleep, e.Time.Minute())
			asleep = -1
		}
	}
	return out, nil
}

var ErrNoSleep = errors.New("no guard ever sleeps")

// pick returns the guard with the highest score, the lowest id on ties,
// multiplied by that guard's favorite minute.
func pick(sleep map[int]*Histogram, score func(*Histogram) int) (int, error) {
	if len(sleep) == 0 {
		return 0, ErrNoSleep
	}
	guards := maps.Keys(sleep)
	slices.Sort(guards)
	best := guards[0]
	for _, g := range guards[1:] {
		if score(sleep[g]) > score(sleep[best]) {
			best = g
		}
	}
	minute, _ := sleep[best].Mode()
	return best * minute, nil
}

// Strategy1 picks the guard asleep the most minutes overall.
func Strategy1(sleep map[int]*Histogram) (int, error) {
	return pick(sleep, (*Histogram).Total)
}

// Strategy2 picks the guard most frequently asleep on the same minute.
func Strategy2(sleep map[int]*Histogram) (int, error) {
	return pick(sleep, func(h *Histogram) int {
		_, c := h.Mode()
		return c
	})
}
