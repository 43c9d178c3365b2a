// Package board implements the Quantik board: a fixed 4x4 grid of cells and
// the twelve groups (rows, columns and quadrants) that can win a game.
package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quantikgo/quantik/piece"
)

const (
	// NumRows and NumCols are fixed by the game; the board does not resize.
	NumRows = 4
	NumCols = 4

	NumCells = NumRows * NumCols
)

// ErrOutOfBounds means that the coordinates fall outside the board.
var ErrOutOfBounds = errors.New("coordinates outside the board")

// OutOfBounds wraps ErrOutOfBounds with the offending coordinates.
func OutOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
}

// IsInBounds returns whether (row, col) addresses a cell on any Quantik board.
func IsInBounds(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

// Board is the grid of cells. The board enforces only structural bounds;
// game rules are checked by the game package.
type Board struct {
	cells [NumRows][NumCols]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			b.cells[r][c] = Cell{row: r, col: c}
		}
	}
	return b
}

func (b *Board) NumRows() int {
	return NumRows
}

func (b *Board) NumCols() int {
	return NumCols
}

func (b *Board) IsInBounds(row, col int) bool {
	return IsInBounds(row, col)
}

// Place puts p on the cell at (row, col). Placing on an occupied cell, or
// placing a nil piece, is silently ignored.
func (b *Board) Place(row, col int, p *piece.Piece) error {
	if !IsInBounds(row, col) {
		return OutOfBounds(row, col)
	}
	cell := &b.cells[row][col]
	if p == nil {
		log.Debug().Int("row", row).Int("col", col).Msg("place-ignored-no-piece")
		return nil
	}
	if !cell.IsEmpty() {
		log.Debug().Int("row", row).Int("col", col).Str("onboard", cell.piece.Text()).
			Msg("place-ignored-occupied")
		return nil
	}
	cell.place(*p)
	return nil
}

// CellAt returns a copy of the cell at (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !IsInBounds(row, col) {
		return Cell{}, OutOfBounds(row, col)
	}
	return b.cells[row][col], nil
}

// cell returns the live cell. The coordinates must already be validated.
func (b *Board) cell(row, col int) *Cell {
	if !IsInBounds(row, col) {
		panic(fmt.Sprintf("unvalidated coordinates reached the board: (%d, %d)", row, col))
	}
	return &b.cells[row][col]
}

// NumPieces counts the pieces on the board.
func (b *Board) NumPieces() int {
	n := 0
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			if !b.cells[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// IsEmpty returns whether no piece has been placed.
func (b *Board) IsEmpty() bool {
	return b.NumPieces() == 0
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			b.cells[r][c].clear()
		}
	}
}

// Copy returns a deep, independent copy of the board.
func (b *Board) Copy() *Board {
	n := &Board{}
	n.CopyFrom(b)
	return n
}

// CopyFrom overwrites this board with the contents of another.
func (b *Board) CopyFrom(other *Board) {
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			b.cells[r][c].copyFrom(&other.cells[r][c])
		}
	}
}

// Equals compares cell by cell.
func (b *Board) Equals(other *Board) bool {
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			if !b.cells[r][c].equals(&other.cells[r][c]) {
				return false
			}
		}
	}
	return true
}
