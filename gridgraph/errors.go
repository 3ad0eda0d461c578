package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDuplicateStart indicates a second start cell in the input.
	ErrDuplicateStart = errors.New("gridgraph: more than one start cell")
	// ErrDuplicateEnd indicates a second end cell in the input.
	ErrDuplicateEnd = errors.New("gridgraph: more than one end cell")
	// ErrUnknownGlyph indicates a character outside the grid alphabet.
	ErrUnknownGlyph = errors.New("gridgraph: unrecognized cell character")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrCellOccupied indicates an edit targeting the start, end or an obstacle.
	ErrCellOccupied = errors.New("gridgraph: cell is occupied")
)
