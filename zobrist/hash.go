package zobrist

import (
	"lukechampine.com/frand"

	"github.com/quantikgo/quantik/board"
	"github.com/quantikgo/quantik/box"
	"github.com/quantikgo/quantik/game"
	"github.com/quantikgo/quantik/piece"
)

const bignum = 1<<63 - 2

const numPieceKinds = piece.NumColors * piece.NumShapes

// Zobrist generates a zobrist hash for a Quantik position: the board, the
// contents of both boxes and the side to move.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	blackToMove uint64

	posTable [board.NumCells][numPieceKinds]uint64
	boxTable [piece.NumColors][piece.NumShapes][box.PerShape + 1]uint64
}

func kind(p piece.Piece) int {
	return int(p.Color())*piece.NumShapes + int(p.Shape())
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for j := range z.posTable[i] {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for c := range z.boxTable {
		for s := range z.boxTable[c] {
			for n := range z.boxTable[c][s] {
				z.boxTable[c][s][n] = frand.Uint64n(bignum) + 1
			}
		}
	}
	z.blackToMove = frand.Uint64n(bignum) + 1
}

// Hash computes the key of a position from scratch.
func (z *Zobrist) Hash(g *game.Game) uint64 {
	key := uint64(0)
	b := g.Board()
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			cell, err := b.CellAt(r, c)
			if err != nil {
				panic(err)
			}
			if p, ok := cell.Piece(); ok {
				key ^= z.posTable[r*board.NumCols+c][kind(p)]
			}
		}
	}
	for _, color := range piece.Colors {
		bx := g.Box(color)
		for _, s := range piece.Shapes {
			key ^= z.boxTable[color][s][bx.CountOf(s)]
		}
	}
	if g.Turn() == piece.Black {
		key ^= z.blackToMove
	}
	return key
}

// AddPlacement updates key for p being put on an empty (row, col) and
// withdrawn from its box, which held remainingBefore pieces of that shape.
// It does not switch the side to move.
func (z *Zobrist) AddPlacement(key uint64, row, col int, p piece.Piece, remainingBefore int) uint64 {
	key ^= z.posTable[row*board.NumCols+col][kind(p)]
	key ^= z.boxTable[p.Color()][p.Shape()][remainingBefore]
	key ^= z.boxTable[p.Color()][p.Shape()][remainingBefore-1]
	return key
}

// SwitchTurn flips the side to move in key.
func (z *Zobrist) SwitchTurn(key uint64) uint64 {
	return key ^ z.blackToMove
}
