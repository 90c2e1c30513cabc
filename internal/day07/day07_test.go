package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2018"
)

var sample = []string{
	"Step C must be finished before step A can begin.",
	"Step C must be finished before step F can begin.",
	"Step A must be finished before step B can begin.",
	"Step A must be finished before step D can begin.",
	"Step B must be finished before step E can begin.",
	"Step D must be finished before step E can begin.",
	"Step F must be finished before step E can begin.",
}

func parse(t *testing.T, lines ...string) *aoc.Graph[Step] {
	t.Helper()
	g, err := ParseGraph(lines)
	require.NoError(t, err)
	return g
}

func TestParseRequirement(t *testing.T) {
	a, b, err := ParseRequirement(sample[0])
	require.NoError(t, err)
	assert.Equal(t, 'C', a)
	assert.Equal(t, 'A', b)

	for _, bad := range []string{
		"",
		"Step CC must be finished before step A can begin.",
		"Step c must be finished before step a can begin.",
		"Step C must be done before A.",
	} {
		_, _, err := ParseRequirement(bad)
		assert.Error(t, err, "ParseRequirement(%q)", bad)
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"sample", sample, "CABDFE"},
		{"single", []string{"Step C must be finished before step A can begin."}, "CA"},
		{"separate chains", []string{
			"Step A must be finished before step B can begin.",
			"Step C must be finished before step D can begin.",
		}, "ABCD"},
		{"shared root", []string{
			"Step C must be finished before step B can begin.",
			"Step C must be finished before step A can begin.",
		}, "CAB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(parse(t, tt.lines...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := Order(parse(t))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSchedule(t *testing.T) {
	res, err := Schedule(parse(t, sample...), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, res.Time)
	assert.Equal(t, "CABFDE", res.Order)

	// One worker finishes steps in topological order.
	res, err = Schedule(parse(t, sample...), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "CABDFE", res.Order)
	assert.Equal(t, 3+1+2+4+6+5, res.Time)

	assert.Equal(t, 61, Duration('A', 60))
	assert.Equal(t, 86, Duration('Z', 60))

	_, err = Schedule(parse(t, sample...), 0, 0)
	assert.Error(t, err)
}

func TestCycle(t *testing.T) {
	g := parse(t,
		"Step A must be finished before step B can begin.",
		"Step B must be finished before step A can begin.",
	)
	_, err := Order(g)
	assert.ErrorIs(t, err, aoc.ErrCycle)
	_, err = Schedule(g, 2, 0)
	assert.ErrorIs(t, err, aoc.ErrCycle)
}
