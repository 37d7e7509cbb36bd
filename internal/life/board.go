package life

import (
	"fmt"
	"strings"
)

// Cell is the state of a single position on the board.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

func (c Cell) String() string {
	if c == Alive {
		return "1"
	}
	return "0"
}

// Board is a fixed-length generation of cells with a scratch buffer for the
// next generation.
type Board struct {
	cur []Cell
	nxt []Cell
}

// NewBoard returns a board of the given size with every cell drawn from rng.
func NewBoard(size int, rng *RNG) (*Board, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidArgument, size)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rng", ErrInvalidArgument)
	}
	b := newBoard(size)
	rng.Fill(b.cur)
	return b, nil
}

// FromCells returns a board holding a copy of cells.
func FromCells(cells []Cell) (*Board, error) {
	for i, c := range cells {
		if c != Dead && c != Alive {
			return nil, fmt.Errorf("%w: cell %d has value %d", ErrInvalidArgument, i, c)
		}
	}
	b := newBoard(len(cells))
	copy(b.cur, cells)
	return b, nil
}

// Parse builds a board from text. It accepts the rendered form "[0, 1, 1]",
// a comma separated list "0,1,1" or a compact run of digits "011".
func Parse(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Split(strings.ReplaceAll(s, " ", ""), "")
	}

	cells := make([]Cell, 0, len(fields))
	for _, f := range fields {
		switch strings.TrimSpace(f) {
		case "0":
			cells = append(cells, Dead)
		case "1":
			cells = append(cells, Alive)
		case "":
			if len(fields) > 1 {
				return nil, fmt.Errorf("%w: empty cell in %q", ErrInvalidArgument, s)
			}
		default:
			return nil, fmt.Errorf("%w: cell value %q", ErrInvalidArgument, f)
		}
	}
	return FromCells(cells)
}

func newBoard(size int) *Board {
	return &Board{cur: make([]Cell, size), nxt: make([]Cell, size)}
}

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cur) }

// Cells returns a copy of the current generation.
func (b *Board) Cells() []Cell {
	c := make([]Cell, len(b.cur))
	copy(c, b.cur)
	return c
}

// IsAlive reports whether the cell at index is alive.
func (b *Board) IsAlive(index int) (bool, error) {
	if err := b.check(index); err != nil {
		return false, err
	}
	return b.cur[index] == Alive, nil
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Advance replaces the board with its next generation and returns the board.
func (b *Board) Advance() *Board {
	n := len(b.cur)
	copy(b.nxt, b.cur)

	// A single cell is both edges at once and has no neighbour to act on.
	if n < 2 {
		return b
	}

	for i, c := range b.cur {
		if c == Dead {
			continue
		}
		switch b.classify(i) {
		case Edge:
			nb := 1
			if i == n-1 {
				nb = n - 2
			}
			if b.cur[nb] == Dead {
				b.nxt[nb] = Alive
			}
		case Dies:
			b.nxt[i] = Dead
		case Survives:
			if b.cur[i-1] == Dead {
				b.nxt[i-1] = Alive
			}
			if b.cur[i+1] == Dead {
				b.nxt[i+1] = Alive
			}
		}
	}

	b.cur, b.nxt = b.nxt, b.cur
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := newBoard(len(b.cur))
	copy(c.cur, b.cur)
	return c
}

// Equal reports whether both boards hold the same generation.
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.cur) != len(other.cur) {
		return false
	}
	for i := range b.cur {
		if b.cur[i] != other.cur[i] {
			return false
		}
	}
	return true
}

// Key returns the generation as a compact digit string such as "0110".
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.cur))
	for _, c := range b.cur {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Render returns the display form of the board, for example "[0, 1, 1, 0]".
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range b.cur {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b *Board) String() string { return b.Render() }

func (b *Board) check(index int) error {
	if index < 0 || index >= len(b.cur) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(b.cur))
	}
	return nil
}
