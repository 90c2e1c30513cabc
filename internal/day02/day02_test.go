package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	ids := []string{"abcdef", "bababc", "abbcde", "abcccd", "aabcdd", "abcdee", "ababab"}
	assert.Equal(t, 12, Checksum(ids))
	assert.Equal(t, 0, Checksum(nil))
}

func TestCommonLetters(t *testing.T) {
	ids := []string{"abcde", "fghij", "klmno", "pqrst", "fguij", "axcye", "wvxyz"}
	got, err := CommonLetters(ids)
	require.NoError(t, err)
	assert.Equal(t, "fgij", got)

	_, err = CommonLetters([]string{"abc", "xyz", "abcd"})
	assert.ErrorIs(t, err, ErrNoMatch)
}
