package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChanges(t *testing.T) {
	got, err := ParseChanges([]string{"+1", "-2", "+30"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 30}, got)

	got, err = ParseChanges([]string{"+1", "", "-2", ""})
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2}, got)

	_, err = ParseChanges([]string{"+1", "2"})
	assert.ErrorContains(t, err, "line 2")

	for _, bad := range []string{"", "+", "*3", "3", "+-3", "+x"} {
		_, err := ParseChange(bad)
		assert.Error(t, err, "ParseChange(%q)", bad)
	}
}

func TestResulting(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{1, -2, 3, 1}, 3},
		{[]int{1, 1, 1}, 3},
		{[]int{1, 1, -2}, 0},
		{[]int{-1, -2, -3}, -6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resulting(tt.in), "Resulting(%v)", tt.in)
	}
}

func TestFirstRepeat(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{1, -2, 3, 1}, 2},
		{[]int{1, -1}, 0},
		{[]int{3, 3, 4, -2, -4}, 10},
		{[]int{-6, 3, 8, 5, -6}, 5},
		{[]int{7, 7, -2, -7, -4}, 14},
	}
	for _, tt := range tests {
		got, err := FirstRepeat(tt.in)
		require.NoError(t, err, "FirstRepeat(%v)", tt.in)
		assert.Equal(t, tt.want, got, "FirstRepeat(%v)", tt.in)
	}
}

func TestFirstRepeatNever(t *testing.T) {
	for _, in := range [][]int{nil, {1}, {2, 2}, {-3}} {
		_, err := FirstRepeat(in)
		assert.ErrorIs(t, err, ErrNoRepeat, "FirstRepeat(%v)", in)
	}
}
