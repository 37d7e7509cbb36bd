package metrics

import "github.com/san-kum/life1d/internal/life"

// Density reports the mean fraction of live cells over all observed generations.
type Density struct {
	name    string
	sum     float64
	samples int
}

func NewDensity() *Density {
	return &Density{
		name: "mean_density",
	}
}

func (d *Density) Name() string {
	return d.name
}

func (d *Density) Observe(gen int, b *life.Board) {
	if b.Len() > 0 {
		d.sum += float64(b.Population()) / float64(b.Len())
	}
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Density) Reset() {
	d.sum = 0
	d.samples = 0
}
