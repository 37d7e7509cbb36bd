// Package viz provides terminal rendering for one-dimensional life boards.
//
// The package implements an animated view using the Bubble Tea framework:
//
//   - [Model]: live view that advances a board on a timer
//   - [RenderBoard]: a generation as a row of coloured blocks
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Reseed the board
//	T     - Cycle color themes
//	Q     - Quit
package viz
