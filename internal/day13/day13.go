// Package day13 solves "Mine Cart Madness": carts driving around a track
// until they crash into each other.
package day13

import (
	"errors"
	"fmt"
	"slices"

	aoc "github.com/maisem/aoc2018"
)

var (
	ErrOffTrack    = errors.New("cart left the track")
	ErrTooFewCarts = errors.New("need at least two carts")
	ErrNoCrash     = errors.New("tick limit reached")
)

// MaxTicks bounds the simulations in FirstCrash and LastCart.
const MaxTicks = 1_000_000

var curves = map[byte]map[aoc.Direction]aoc.Direction{
	'/': {
		aoc.Up:    aoc.Right,
		aoc.Right: aoc.Up,
		aoc.Down:  aoc.Left,
		aoc.Left:  aoc.Down,
	},
	'\\': {
		aoc.Up:    aoc.Left,
		aoc.Left:  aoc.Up,
		aoc.Down:  aoc.Right,
		aoc.Right: aoc.Down,
	},
}

// Cart is a cart on the track. At intersections it turns left, goes
// straight and turns right, in that order, over and over.
type Cart struct {
	aoc.Path
	turns   int
	crashed bool
}

func (c *Cart) intersection() {
	switch c.turns % 3 {
	case 0:
		c.Dir = c.Dir.Turn(false)
	case 2:
		c.Dir = c.Dir.Turn(true)
	}
	c.turns++
}

// Mine is the track and the carts on it.
type Mine struct {
	Track aoc.Grid[byte]
	Carts []*Cart
	Ticks int
}

// Parse reads the track drawing. Carts are drawn as ^ > v < on straight
// track; the track under them is restored.
func Parse(lines []string) (*Mine, error) {
	m := &Mine{Track: aoc.ParseGrid(lines)}
	var err error
	m.Track.ForEach(func(p aoc.Pt, c byte) {
		d, ok := aoc.ParseDirection(c)
		if !ok {
			switch c {
			case ' ', '|', '-', '/', '\\', '+':
			default:
				if err == nil {
					err = fmt.Errorf("unexpected %q at %v", c, p)
				}
			}
			return
		}
		m.Carts = append(m.Carts, &Cart{Path: aoc.Path{Pt: p, Dir: d}})
		if d == aoc.Left || d == aoc.Right {
			m.Track.Set(p, '-')
		} else {
			m.Track.Set(p, '|')
		}
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Alive returns the carts that have not crashed, in reading order.
func (m *Mine) Alive() []*Cart {
	var out []*Cart
	for _, c := range m.Carts {
		if !c.crashed {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b *Cart) int {
		switch {
		case a.Pt.ReadingLess(b.Pt):
			return -1
		case b.Pt.ReadingLess(a.Pt):
			return 1
		}
		return 0
	})
	return out
}

// Tick moves every cart one step, in reading order, and returns where carts
// crashed. Crashed carts are taken off the track right away, so later carts
// in the same tick drive through.
func (m *Mine) Tick() ([]aoc.Pt, error) {
	carts := m.Alive()
	at := make(map[aoc.Pt]*Cart, len(carts))
	for _, c := range carts {
		at[c.Pt] = c
	}
	var crashes []aoc.Pt
	for _, c := range carts {
		if c.crashed {
			continue
		}
		delete(at, c.Pt)
		next, ok := m.Track.Move(c.Path)
		if !ok {
			return nil, fmt.Errorf("%w: cart at %v heading %v", ErrOffTrack, c.Pt, c.Dir)
		}
		c.Path = next
		if o, ok := at[c.Pt]; ok {
			c.crashed, o.crashed = true, true
			delete(at, c.Pt)
			crashes = append(crashes, c.Pt)
			continue
		}
		at[c.Pt] = c
		if err := m.steer(c); err != nil {
			return nil, err
		}
	}
	m.Ticks++
	return crashes, nil
}

func (m *Mine) steer(c *Cart) error {
	track := m.Track.At(c.Pt)
	vertical := c.Dir == aoc.Up || c.Dir == aoc.Down
	switch track {
	case '/', '\\':
		c.Dir = curves[track][c.Dir]
		return nil
	case '+':
		c.intersection()
		return nil
	case '|':
		if vertical {
			return nil
		}
	case '-':
		if !vertical {
			return nil
		}
	}
	return fmt.Errorf("%w: cart at %v heading %v onto %q", ErrOffTrack, c.Pt, c.Dir, track)
}

// FirstCrash runs the carts until two of them collide.
func (m *Mine) FirstCrash() (aoc.Pt, error) {
	if len(m.Alive()) < 2 {
		return aoc.Pt{}, ErrTooFewCarts
	}
	for m.Ticks < MaxTicks {
		crashes, err := m.Tick()
		if err != nil {
			return aoc.Pt{}, err
		}
		if len(crashes) > 0 {
			return crashes[0], nil
		}
	}
	return aoc.Pt{}, ErrNoCrash
}

// LastCart runs the carts until a single one is left, and returns its
// position at the end of that tick.
func (m *Mine) LastCart() (aoc.Pt, error) {
	if len(m.Alive()) < 2 {
		return aoc.Pt{}, ErrTooFewCarts
	}
	for m.Ticks < MaxTicks {
		if _, err := m.Tick(); err != nil {
			return aoc.Pt{}, err
		}
		switch alive := m.Alive(); len(alive) {
		case 0:
			return aoc.Pt{}, fmt.Errorf("%w: every cart crashed", ErrTooFewCarts)
		case 1:
			return alive[0].Pt, nil
		}
	}
	return aoc.Pt{}, ErrNoCrash
}
