package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/life1d/internal/life"
)

func mustParse(s string) *life.Board {
	b, err := life.Parse(s)
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("Board", func() {
	Describe("Advance", func() {
		DescribeTable("next generation",
			func(in, want string) {
				b := mustParse(in)
				Expect(b.Advance().Render()).To(Equal(want))
			},
			Entry("lone interior cell revives both neighbours", "0,0,1,0,0", "[0, 1, 1, 1, 0]"),
			Entry("interior cell with two live neighbours dies", "1,1,1", "[1, 0, 1]"),
			Entry("live edges revive their only neighbour", "1,0,0,0,1", "[1, 1, 0, 1, 1]"),
			Entry("all dead stays dead", "0,0,0,0", "[0, 0, 0, 0]"),
			Entry("all alive keeps only the edges", "1,1,1,1,1", "[1, 0, 0, 0, 1]"),
			Entry("two cells revive each other", "1,0", "[1, 1]"),
			Entry("two live cells stay alive", "1,1", "[1, 1]"),
			Entry("single live cell is unchanged", "1", "[1]"),
			Entry("single dead cell is unchanged", "0", "[0]"),
			Entry("empty board is unchanged", "", "[]"),
		)

		It("reads only the previous generation", func() {
			// Cell 1 revives cell 2; cell 2 must still be seen as dead by cell 3.
			b := mustParse("0,1,0,1,0")
			Expect(b.Advance().Key()).To(Equal("11111"))
		})

		It("never kills an edge cell", func() {
			b, err := life.NewBoard(32, life.NewRNG(7))
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 50; i++ {
				first, _ := b.IsAlive(0)
				last, _ := b.IsAlive(b.Len() - 1)
				b.Advance()
				if first {
					Expect(b.IsAlive(0)).To(BeTrue())
				}
				if last {
					Expect(b.IsAlive(b.Len() - 1)).To(BeTrue())
				}
			}
		})

		It("keeps the board length", func() {
			for size := 0; size < 20; size++ {
				b, err := life.NewBoard(size, life.NewRNG(int64(size)))
				Expect(err).NotTo(HaveOccurred())
				Expect(b.Advance().Len()).To(Equal(size))
			}
		})

		It("is deterministic for equal boards", func() {
			a, _ := life.NewBoard(40, life.NewRNG(3))
			b := a.Clone()
			for i := 0; i < 10; i++ {
				Expect(a.Advance().Equal(b.Advance())).To(BeTrue())
			}
		})
	})

	Describe("IsAlive", func() {
		It("reports cell state", func() {
			b := mustParse("0,1")
			Expect(b.IsAlive(0)).To(BeFalse())
			Expect(b.IsAlive(1)).To(BeTrue())
		})

		It("rejects indices outside the board", func() {
			b := mustParse("0,1")
			_, err := b.IsAlive(2)
			Expect(err).To(MatchError(life.ErrIndexOutOfRange))
			_, err = b.IsAlive(-1)
			Expect(err).To(MatchError(life.ErrIndexOutOfRange))
		})
	})

	Describe("Classify", func() {
		DescribeTable("classification",
			func(in string, index int, want life.Rule) {
				Expect(mustParse(in).Classify(index)).To(Equal(want))
			},
			Entry("first index", "1,1,1", 0, life.Edge),
			Entry("last index", "1,1,1", 2, life.Edge),
			Entry("both neighbours alive", "1,0,1", 1, life.Dies),
			Entry("left neighbour dead", "0,1,1", 1, life.Survives),
			Entry("both neighbours dead", "0,1,0", 1, life.Survives),
		)

		It("rejects indices outside the board", func() {
			_, err := mustParse("").Classify(0)
			Expect(err).To(MatchError(life.ErrIndexOutOfRange))
		})
	})

	Describe("construction", func() {
		It("rejects a negative size", func() {
			_, err := life.NewBoard(-1, life.NewRNG(1))
			Expect(err).To(MatchError(life.ErrInvalidArgument))
		})

		It("rejects a nil rng", func() {
			_, err := life.NewBoard(3, nil)
			Expect(err).To(MatchError(life.ErrInvalidArgument))
		})

		It("seeds identically for the same seed", func() {
			a, _ := life.NewBoard(64, life.NewRNG(99))
			b, _ := life.NewBoard(64, life.NewRNG(99))
			Expect(a.Equal(b)).To(BeTrue())
		})

		It("produces both states on a large board", func() {
			b, _ := life.NewBoard(1000, life.NewRNG(5))
			Expect(b.Population()).To(BeNumerically(">", 0))
			Expect(b.Population()).To(BeNumerically("<", 1000))
		})

		It("rejects cell values other than 0 and 1", func() {
			_, err := life.FromCells([]life.Cell{0, 2})
			Expect(err).To(MatchError(life.ErrInvalidArgument))
			_, err = life.Parse("0,x,1")
			Expect(err).To(MatchError(life.ErrInvalidArgument))
		})

		It("parses every supported text form", func() {
			Expect(mustParse("[0, 1, 1, 0]").Key()).To(Equal("0110"))
			Expect(mustParse("0110").Key()).To(Equal("0110"))
			Expect(mustParse(" 0,1,1,0 ").Key()).To(Equal("0110"))
		})

		It("does not alias the caller's slice", func() {
			cells := []life.Cell{life.Alive, life.Dead}
			b, _ := life.FromCells(cells)
			cells[0] = life.Dead
			Expect(b.IsAlive(0)).To(BeTrue())
			b.Cells()[1] = life.Alive
			Expect(b.IsAlive(1)).To(BeFalse())
		})
	})
})
