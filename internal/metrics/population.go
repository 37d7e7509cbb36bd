package metrics

import "github.com/san-kum/life1d/internal/life"

// Population reports the number of live cells in the last observed generation.
type Population struct {
	name string
	last int
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string {
	return p.name
}

func (p *Population) Observe(gen int, b *life.Board) {
	p.last = b.Population()
}

func (p *Population) Value() float64 {
	return float64(p.last)
}

func (p *Population) Reset() {
	p.last = 0
}
