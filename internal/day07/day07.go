// Package day07 solves "The Sum of Its Parts": ordering and scheduling
// steps that depend on each other.
//
// A step is blocked while it has unfinished requirements, available once
// they are all done, in progress while a worker holds it, then done.
// Whenever several steps are available the alphabetically first one is
// taken.
package day07

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2018"
)

// Step is a single-letter step id.
type Step = rune

// ParseRequirement parses
// "Step C must be finished before step A can begin.".
func ParseRequirement(line string) (before, after Step, err error) {
	f := strings.Fields(line)
	if len(f) != 10 || f[0] != "Step" || f[6] != "step" || len(f[1]) != 1 || len(f[7]) != 1 {
		return 0, 0, fmt.Errorf("invalid requirement: %q", line)
	}
	a, b := Step(f[1][0]), Step(f[7][0])
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		return 0, 0, fmt.Errorf("invalid requirement: %q", line)
	}
	return a, b, nil
}

// ParseGraph builds the dependency graph; an edge a->b means a must finish
// before b can begin.
func ParseGraph(lines []string) (*aoc.Graph[Step], error) {
	g := new(aoc.Graph[Step])
	for i, l := range lines {
		if l == "" {
			continue
		}
		a, b, err := ParseRequirement(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		g.AddEdge(a, b)
	}
	return g, nil
}

func prio(s Step) int { return int(s) }

// Order returns the order in which a single person completes the steps.
func Order(g *aoc.Graph[Step]) (string, error) {
	order, err := g.TopoOrder(prio)
	if err != nil {
		return "", err
	}
	return string(order), nil
}

// Duration is how long step s takes: base plus its position in the
// alphabet.
func Duration(s Step, base int) int {
	return base + int(s-'A') + 1
}

// Result is the outcome of a Schedule.
type Result struct {
	Order string // completion order
	Time  int    // seconds until the last step is done
}

// Schedule simulates workers working on the steps in parallel. Idle workers
// take the first available step; time then jumps to the next moment a
// worker finishes.
func Schedule(g *aoc.Graph[Step], workers, base int) (Result, error) {
	if workers < 1 {
		return Result{}, fmt.Errorf("need at least one worker, got %d", workers)
	}
	required := g.InDegrees()
	available := aoc.MinQueue[Step]()
	for s, n := range required {
		if n == 0 {
			available.PushValue(s, prio(s))
		}
	}

	// In progress steps, by the time they finish.
	busy := aoc.MinQueue[Step]()
	var (
		now  int
		done []Step
	)
	for len(done) < len(g.Nodes) {
		for busy.Len() < workers && available.Len() > 0 {
			s := available.Pop().V
			busy.PushValue(s, now+Duration(s, base))
		}
		if busy.Len() == 0 {
			return Result{}, fmt.Errorf("%w: %d of %d steps done", aoc.ErrCycle, len(done), len(g.Nodes))
		}

		now = busy.Peek().P
		var finished []Step
		for busy.Len() > 0 && busy.Peek().P == now {
			finished = append(finished, busy.Pop().V)
		}
		slices.Sort(finished)
		for _, s := range finished {
			done = append(done, s)
			for next := range g.Edges[s] {
				required[next]--
				if required[next] == 0 {
					available.PushValue(next, prio(next))
				}
			}
		}
	}
	return Result{Order: string(done), Time: now}, nil
}
