package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	g, err := ParseGame("10 players; last marble is worth 1618 points")
	require.NoError(t, err)
	assert.Equal(t, Game{Players: 10, LastMarble: 1618}, g)

	for _, bad := range []string{"", "players; last marble", "0 players; last marble is worth 5 points"} {
		_, err := ParseGame(bad)
		assert.Error(t, err, "ParseGame(%q)", bad)
	}
}

func TestHighScore(t *testing.T) {
	tests := []struct {
		players, last, want int
	}{
		{9, 25, 32},
		{10, 1618, 8317},
		{13, 7999, 146373},
		{17, 1104, 2764},
		{21, 6111, 54718},
		{30, 5807, 37305},
		{5, 22, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		g := Game{Players: tt.players, LastMarble: tt.last}
		assert.Equal(t, tt.want, g.HighScore(), "%+v", g)
	}
}
