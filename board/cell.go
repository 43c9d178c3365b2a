package board

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quantikgo/quantik/piece"
)

// A Cell is a single position on the board. Its coordinates are fixed when
// the board is built; it holds at most one piece.
type Cell struct {
	row int
	col int

	piece    piece.Piece
	occupied bool
}

func (c Cell) String() string {
	if !c.occupied {
		return fmt.Sprintf("<(%d,%d) empty>", c.row, c.col)
	}
	return fmt.Sprintf("<(%d,%d) %s>", c.row, c.col, c.piece.Text())
}

func (c Cell) Row() int {
	return c.row
}

func (c Cell) Col() int {
	return c.col
}

// Piece returns the piece on the cell, if any.
func (c Cell) Piece() (piece.Piece, bool) {
	return c.piece, c.occupied
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// DisplayString is the five-character token for the board display.
func (c Cell) DisplayString() string {
	if !c.occupied {
		return "-----"
	}
	return "-" + c.piece.Text() + "-"
}

func (c *Cell) place(p piece.Piece) {
	c.piece = p
	c.occupied = true
}

func (c *Cell) clear() {
	c.piece = piece.Piece{}
	c.occupied = false
}

func (c *Cell) copyFrom(c2 *Cell) {
	c.row = c2.row
	c.col = c2.col
	c.piece = c2.piece
	c.occupied = c2.occupied
}

func (c *Cell) equals(c2 *Cell) bool {
	if c.row != c2.row || c.col != c2.col {
		log.Debug().Int("row", c.row).Int("col", c.col).Msg("cell-coords-not-equal")
		return false
	}
	if c.occupied != c2.occupied {
		log.Debug().Int("row", c.row).Int("col", c.col).Msg("cell-occupancy-not-equal")
		return false
	}
	if c.occupied && c.piece != c2.piece {
		log.Debug().Int("row", c.row).Int("col", c.col).
			Str("p1", c.piece.Text()).Str("p2", c2.piece.Text()).
			Msg("cell-pieces-not-equal")
		return false
	}
	return true
}
