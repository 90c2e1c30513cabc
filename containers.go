package aoc

import (
	"container/heap"
	"fmt"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// Values returns the stack contents, bottom first.
func (s *Stack[T]) Values() []T {
	return s.s
}

type PQI[T any] struct {
	V  T
	P  int
	ix int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// MinQueue returns a priority queue that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{
		pq: pq[T]{
			min: true,
		},
	}
}

type PQ[T any] struct {
	pq pq[T]
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.pq, v)
}

// PushValue pushes v with priority p.
func (pq *PQ[T]) PushValue(v T, p int) {
	pq.Push(&PQI[T]{V: v, P: p})
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

// Peek returns the next item Pop would return without removing it.
func (pq *PQ[T]) Peek() *PQI[T] {
	return pq.pq.q[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] struct {
	q   []*PQI[T]
	min bool
}

func (pq pq[T]) Len() int { return len(pq.q) }

func (pq pq[T]) Less(i, j int) bool {
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// Ring is a circular doubly-linked list with a cursor. Positive moves go
// clockwise. Nodes live in flat slices and removed nodes are not reused.
type Ring[T any] struct {
	vals       []T
	next, prev []int
	cur        int
	n          int
}

// NewRing returns a ring holding only v, with the cursor on it. sizeHint
// preallocates room for that many insertions.
func NewRing[T any](v T, sizeHint int) *Ring[T] {
	r := &Ring[T]{
		vals: make([]T, 1, sizeHint+1),
		next: make([]int, 1, sizeHint+1),
		prev: make([]int, 1, sizeHint+1),
		n:    1,
	}
	r.vals[0] = v
	return r
}

func (r *Ring[T]) Len() int {
	return r.n
}

// Current returns the value under the cursor.
func (r *Ring[T]) Current() T {
	return r.vals[r.cur]
}

// Move moves the cursor k steps, counter-clockwise when k is negative.
func (r *Ring[T]) Move(k int) {
	for ; k > 0; k-- {
		r.cur = r.next[r.cur]
	}
	for ; k < 0; k++ {
		r.cur = r.prev[r.cur]
	}
}

// Insert adds v clockwise of the cursor and moves the cursor onto it.
func (r *Ring[T]) Insert(v T) {
	ix := len(r.vals)
	after := r.next[r.cur]
	r.vals = append(r.vals, v)
	r.prev = append(r.prev, r.cur)
	r.next = append(r.next, after)
	r.next[r.cur] = ix
	r.prev[after] = ix
	r.cur = ix
	r.n++
}

// Remove takes the value under the cursor out of the ring and moves the
// cursor clockwise. It panics if that would empty the ring.
func (r *Ring[T]) Remove() T {
	if r.n == 1 {
		panic("aoc: Remove of last Ring element")
	}
	v := r.vals[r.cur]
	p, nx := r.prev[r.cur], r.next[r.cur]
	r.next[p] = nx
	r.prev[nx] = p
	r.cur = nx
	r.n--
	return v
}

// Values returns the ring contents clockwise, starting at the cursor.
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.n)
	for i, ix := 0, r.cur; i < r.n; i, ix = i+1, r.next[ix] {
		out = append(out, r.vals[ix])
	}
	return out
}
