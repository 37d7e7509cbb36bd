package life

// Rule is the classification of a cell used by Advance.
type Rule int

const (
	// Edge marks the first or last cell, which has a single neighbour.
	Edge Rule = iota
	// Dies marks an interior cell whose two neighbours are both alive.
	Dies
	// Survives marks an interior cell that does not have two live neighbours.
	Survives
)

func (r Rule) String() string {
	switch r {
	case Edge:
		return "edge"
	case Dies:
		return "dies"
	case Survives:
		return "survives"
	default:
		return "unknown"
	}
}

// Classify returns the rule that applies to the cell at index.
func (b *Board) Classify(index int) (Rule, error) {
	if err := b.check(index); err != nil {
		return Edge, err
	}
	return b.classify(index), nil
}

func (b *Board) classify(i int) Rule {
	if i == 0 || i == len(b.cur)-1 {
		return Edge
	}
	if b.cur[i-1] == Alive && b.cur[i+1] == Alive {
		return Dies
	}
	return Survives
}
