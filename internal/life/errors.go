package life

import "errors"

// Domain errors for board operations.
var (
	// ErrIndexOutOfRange indicates a cell index outside [0, len).
	ErrIndexOutOfRange = errors.New("life: index out of range")

	// ErrInvalidArgument indicates a negative size or a cell value other than 0 or 1.
	ErrInvalidArgument = errors.New("life: invalid argument")
)
