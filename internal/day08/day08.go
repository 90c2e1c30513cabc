// Package day08 solves "Memory Maneuver": a license file encoding a tree
// as a flat list of numbers.
package day08

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2018"
)

var ErrTruncated = errors.New("license truncated")

// Node is a tree node: a header of two counts followed by that many
// children and metadata entries.
type Node struct {
	Children []*Node
	Metadata []int
}

// Parse decodes the whitespace separated numbers in s into a tree. All of
// the numbers must belong to the root node.
func Parse(s string) (*Node, error) {
	var q aoc.Queue[int]
	for _, f := range strings.Fields(s) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative number %d", v)
		}
		q.Push(v)
	}
	n, err := parseNode(&q)
	if err != nil {
		return nil, err
	}
	if q.Len() > 0 {
		return nil, fmt.Errorf("%d trailing numbers after the root node", q.Len())
	}
	return n, nil
}

func parseNode(q *aoc.Queue[int]) (*Node, error) {
	nc, ok1 := q.Pop()
	nm, ok2 := q.Pop()
	if !ok1 || !ok2 {
		return nil, ErrTruncated
	}
	n := &Node{}
	for i := 0; i < nc; i++ {
		c, err := parseNode(q)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	if q.Len() < nm {
		return nil, ErrTruncated
	}
	n.Metadata = make([]int, nm)
	for i := range n.Metadata {
		n.Metadata[i], _ = q.Pop()
	}
	return n, nil
}

// MetaSum is the sum of every metadata entry in the tree.
func (n *Node) MetaSum() int {
	s := aoc.Sum(n.Metadata...)
	for _, c := range n.Children {
		s += c.MetaSum()
	}
	return s
}

// Value of a leaf is the sum of its metadata. Otherwise each metadata entry
// is a 1-based child index, and the value is the sum of the referenced
// children's values; out of range entries count for nothing.
func (n *Node) Value() int {
	if len(n.Children) == 0 {
		return aoc.Sum(n.Metadata...)
	}
	v := 0
	for _, m := range n.Metadata {
		if m >= 1 && m <= len(n.Children) {
			v += n.Children[m-1].Value()
		}
	}
	return v
}
