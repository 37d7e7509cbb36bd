package metrics

import "github.com/san-kum/life1d/internal/life"

// Stability detects the first generation that repeats an earlier one. A period
// of 1 is a fixed point; larger periods are oscillators.
type Stability struct {
	name      string
	seen      map[string]int
	settledAt int
	period    int
}

func NewStability() *Stability {
	s := &Stability{name: "settled_at"}
	s.Reset()
	return s
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(gen int, b *life.Board) {
	if s.settledAt >= 0 {
		return
	}
	key := b.Key()
	if first, ok := s.seen[key]; ok {
		s.settledAt = gen
		s.period = gen - first
		s.seen = nil
		return
	}
	s.seen[key] = gen
}

// Value returns the generation at which the board first repeated, or -1.
func (s *Stability) Value() float64 {
	return float64(s.settledAt)
}

// Period returns the cycle length, or 0 if no repetition was seen.
func (s *Stability) Period() int {
	return s.period
}

func (s *Stability) Reset() {
	s.seen = make(map[string]int)
	s.settledAt = -1
	s.period = 0
}
