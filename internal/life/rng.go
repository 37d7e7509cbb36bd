package life

import "math/rand/v2"

// RNG is a seedable source for initial boards.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Cell returns Alive or Dead with equal probability.
func (r *RNG) Cell() Cell {
	return Cell(r.r.IntN(2))
}

// Fill assigns an independent random state to every cell in buf.
func (r *RNG) Fill(buf []Cell) {
	for i := range buf {
		buf[i] = r.Cell()
	}
}
