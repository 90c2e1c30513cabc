package aoc

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when a graph expected to be acyclic is not.
var ErrCycle = errors.New("graph has a cycle")

// Graph is a directed graph. An edge a->b means a comes before b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]bool
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(from, to K) {
	InitMap(&g.Edges)
	g.AddNode(from)
	g.AddNode(to)
	if g.Edges[from] == nil {
		g.Edges[from] = make(map[K]bool)
	}
	g.Edges[from][to] = true
}

// InDegrees returns the number of incoming edges of every node.
func (g *Graph[K]) InDegrees() map[K]int {
	deg := make(map[K]int, len(g.Nodes))
	for k := range g.Nodes {
		deg[k] += 0
		for to := range g.Edges[k] {
			deg[to]++
		}
	}
	return deg
}

// TopoOrder returns the nodes in dependency order. Whenever several nodes
// are ready, the one with the lowest prio goes first.
func (g *Graph[K]) TopoOrder(prio func(K) int) ([]K, error) {
	deg := g.InDegrees()
	ready := MinQueue[K]()
	for k, d := range deg {
		if d == 0 {
			ready.PushValue(k, prio(k))
		}
	}
	out := make([]K, 0, len(g.Nodes))
	for ready.Len() > 0 {
		k := ready.Pop().V
		out = append(out, k)
		for to := range g.Edges[k] {
			deg[to]--
			if deg[to] == 0 {
				ready.PushValue(to, prio(to))
			}
		}
	}
	if len(out) != len(g.Nodes) {
		return out, fmt.Errorf("%w: %d of %d nodes ordered", ErrCycle, len(out), len(g.Nodes))
	}
	return out, nil
}
