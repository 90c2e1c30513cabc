package aoc

import (
	"errors"
	"slices"
	"testing"
)

func TestRing(t *testing.T) {
	r := NewRing(0, 4)
	r.Move(1) // a lone node is its own neighbor
	if got := r.Current(); got != 0 {
		t.Fatalf("Current = %v, want 0", got)
	}
	for i := 1; i <= 4; i++ {
		r.Move(1)
		r.Insert(i)
	}
	// 0 4 2 1 3, cursor on 4.
	if got, want := r.Values(), []int{4, 2, 1, 3, 0}; !slices.Equal(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
	r.Move(-2)
	if got := r.Remove(); got != 3 {
		t.Errorf("Remove = %v, want 3", got)
	}
	if got, want := r.Values(), []int{0, 4, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("Values after Remove = %v, want %v", got, want)
	}
	if r.Len() != 4 {
		t.Errorf("Len = %d, want 4", r.Len())
	}
}

func TestRingRemoveLast(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Remove of the last element did not panic")
		}
	}()
	NewRing("x", 0).Remove()
}

func TestPQ(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	pq := MinQueue[string]()
	for _, p := range in {
		pq.PushValue(Itoa(p), p)
	}
	if top := pq.Peek(); top.V != "1" || pq.Len() != len(in) {
		t.Errorf("Peek = %v (len %d), want 1:1 (len %d)", top, pq.Len(), len(in))
	}
	var got []int
	for pq.Len() > 0 {
		got = append(got, pq.Pop().P)
	}
	if want := []int{1, 2, 3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("queue order = %v, want %v", got, want)
	}
}

func TestStackQueue(t *testing.T) {
	var s Stack[byte]
	for _, c := range []byte("abc") {
		s.Push(c)
	}
	if v, _ := s.Pop(); v != 'c' {
		t.Errorf("Stack.Pop = %c, want c", v)
	}
	if v, _ := s.Peek(); v != 'b' || s.Len() != 2 {
		t.Errorf("Stack.Peek = %c (len %d), want b (len 2)", v, s.Len())
	}

	var q Queue[int]
	for i := 1; i <= 3; i++ {
		q.Push(i)
	}
	var got []int
	for q.Len() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Queue order = %v", got)
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("Pop on empty queue reported ok")
	}
}

func TestTopoOrder(t *testing.T) {
	var g Graph[rune]
	for _, e := range []string{"CA", "CF", "AB", "AD", "BE", "DE", "FE"} {
		g.AddEdge(rune(e[0]), rune(e[1]))
	}
	got, err := g.TopoOrder(func(r rune) int { return int(r) })
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "CABDFE" {
		t.Errorf("TopoOrder = %q, want CABDFE", string(got))
	}

	g.AddEdge('E', 'C')
	if _, err := g.TopoOrder(func(r rune) int { return int(r) }); !errors.Is(err, ErrCycle) {
		t.Errorf("TopoOrder on a cycle = %v, want ErrCycle", err)
	}
}
