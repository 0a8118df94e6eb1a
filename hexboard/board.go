// Package hexboard models an N×N rhombic Hex board: a dense array of cells,
// turn tracking, and move/undo. Everything here is O(1); the board itself
// knows nothing about connectivity or win conditions (see package
// pathfinding).
package hexboard

import "github.com/pkg/errors"

// MaxLength is the largest board side this package supports. The
// connection oracle's scratch buffer is sized off this constant, so it
// must not grow without also revisiting pathfinding.Oracle.
const MaxLength = 20

// Cell is the tri-valued occupancy of a single hexagon.
type Cell int

const (
	Unoccupied Cell = iota
	White
	Black
)

func (c Cell) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unoccupied"
	}
}

// ErrInvalidLength is returned by NewBoard when L is out of [1, MaxLength].
var ErrInvalidLength = errors.New("hexboard: length must be in [1, 20]")

// Move is a cell index in [0, L*L).
type Move int

// Board is a fixed-size, mutable Hex board. White moves first; White
// connects row 0 to row L-1, Black connects column 0 to column L-1.
//
// Board is not safe for concurrent use; callers that need independent
// search states (e.g. one per MCTS worker) must Clone it.
type Board struct {
	cells       []Cell
	length      int
	numOccupied int
	whiteToMove bool
}

// NewBoard constructs an empty board of side length L.
func NewBoard(length int) (*Board, error) {
	if length <= 0 || length > MaxLength {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d", length)
	}
	return &Board{
		cells:       make([]Cell, length*length),
		length:      length,
		whiteToMove: true,
	}, nil
}

// Clone returns an independent deep copy of b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		cells:       cells,
		length:      b.length,
		numOccupied: b.numOccupied,
		whiteToMove: b.whiteToMove,
	}
}

// At returns the cell at index i. It panics if i is out of range.
func (b *Board) At(i Move) Cell {
	return b.cells[i]
}

// Length returns L.
func (b *Board) Length() int { return b.length }

// Area returns L*L.
func (b *Board) Area() int { return b.length * b.length }

// CountOccupied returns the number of stones placed by both players.
func (b *Board) CountOccupied() int { return b.numOccupied }

// CountUnoccupied returns the number of legal moves remaining.
func (b *Board) CountUnoccupied() int { return b.Area() - b.numOccupied }

// WhiteToMove reports whether it is White's turn.
func (b *Board) WhiteToMove() bool { return b.whiteToMove }

// IsLegalMove reports whether i is a valid, empty cell index.
func (b *Board) IsLegalMove(i Move) bool {
	return int(i) >= 0 && int(i) < len(b.cells) && b.cells[i] == Unoccupied
}

// MakeMove places the current mover's stone at i and flips the turn.
// Precondition: IsLegalMove(i). Violating it panics, per spec: in this
// engine all callers maintain the precondition by construction, so a
// violation is a programmer error, not a recoverable condition.
func (b *Board) MakeMove(i Move) {
	if !b.IsLegalMove(i) {
		panic("hexboard: MakeMove on occupied or out-of-range cell")
	}
	if b.whiteToMove {
		b.cells[i] = White
	} else {
		b.cells[i] = Black
	}
	b.whiteToMove = !b.whiteToMove
	b.numOccupied++
}

// UndoMove clears cell i and flips the turn back. Precondition: i is
// currently occupied. Callers must undo moves in reverse order for the
// turn flag to stay coherent — UndoMove flips it unconditionally and has
// no way to check whose stone it is clearing.
func (b *Board) UndoMove(i Move) {
	if b.IsLegalMove(i) {
		panic("hexboard: UndoMove on a cell with no stone")
	}
	b.cells[i] = Unoccupied
	b.whiteToMove = !b.whiteToMove
	b.numOccupied--
}
