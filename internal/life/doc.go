// Package life implements the generation engine of a one-dimensional Game of
// Life variant.
//
// A [Board] is a fixed-length row of [Cell] values. Each call to
// [Board.Advance] computes the next generation from the current one:
//
//   - a dead cell does nothing
//   - a live edge cell (first or last index) revives its single neighbour if
//     that neighbour is dead; edge cells never die
//   - a live interior cell with two live neighbours dies
//   - any other live interior cell revives each dead neighbour
//
// All reads use the current generation and all writes go to a second buffer,
// so the order in which cells are visited never matters.
//
// # Example
//
//	b, _ := life.NewBoard(10, life.NewRNG(42))
//	fmt.Println(b)
//	b.Advance()
//	fmt.Println(b)
//
// # Thread Safety
//
// A Board is owned by a single caller and is NOT safe for concurrent use.
package life
