// Package game encapsulates the turn mechanics of a Quantik game: whose
// turn it is, what moves are legal, and when and how the game ends.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quantikgo/quantik/board"
	"github.com/quantikgo/quantik/box"
	"github.com/quantikgo/quantik/move"
	"github.com/quantikgo/quantik/piece"
)

// ErrOutOfBounds is returned when a placement addresses a cell outside the
// board.
var ErrOutOfBounds = board.ErrOutOfBounds

// Game is the controller for one Quantik game.
type Game struct {
	board  *board.Board
	groups *board.GroupManager
	boxes  [piece.NumColors]*box.Box
	turn   piece.Color
	moves  int
}

// NewGame creates a game on an empty board with two full boxes. White
// moves first.
func NewGame() *Game {
	return NewFromParts(board.NewBoard(), box.New(piece.White), box.New(piece.Black))
}

// NewFromParts creates a game from an existing board and boxes. The game
// takes ownership of them; the caller should not modify them afterwards.
// White moves first and the move counter starts at zero.
func NewFromParts(b *board.Board, white, black *box.Box) *Game {
	if white.Color() != piece.White || black.Color() != piece.Black {
		panic(fmt.Sprintf("boxes passed in the wrong order: %v, %v", white.Color(), black.Color()))
	}
	return &Game{
		board:  b,
		groups: board.NewGroupManager(b),
		boxes:  [piece.NumColors]*box.Box{white, black},
		turn:   piece.White,
	}
}

// SwitchTurn hands the move to the other player.
func (g *Game) SwitchTurn() {
	g.turn = g.turn.Opposite()
}

// IsLegalMove returns whether the player on turn may put the shape on
// (row, col): the cell exists and is empty, the shape is still in the
// player's box, and no group of the cell holds an opponent piece of the
// same shape.
func (g *Game) IsLegalMove(row, col int, shape piece.Shape) bool {
	cell, err := g.board.CellAt(row, col)
	if err != nil {
		return false
	}
	return cell.IsEmpty() &&
		g.boxes[g.turn].IsAvailable(shape) &&
		!g.groups.HasConflict(cell, shape, g.turn)
}

// Place takes the shape from the mover's box and puts it on (row, col).
// Only the bounds are checked here; callers are expected to ask
// IsLegalMove first. The move counter goes up even if nothing could be
// placed. Place does not switch the turn.
func (g *Game) Place(row, col int, shape piece.Shape) error {
	if !board.IsInBounds(row, col) {
		return board.OutOfBounds(row, col)
	}
	var p *piece.Piece
	if pc, ok := g.boxes[g.turn].Withdraw(shape); ok {
		p = &pc
	}
	if err := g.board.Place(row, col, p); err != nil {
		panic(fmt.Sprintf("validated placement failed: %v", err))
	}
	g.moves++
	log.Debug().Int("row", row).Int("col", col).Str("shape", shape.String()).
		Str("turn", g.turn.String()).Int("moves", g.moves).Bool("placed", p != nil).
		Msg("place")
	return nil
}

// IsBlocked returns whether the player on turn has no legal move at all,
// either because the box is empty or because every (cell, shape) pair is
// illegal.
func (g *Game) IsBlocked() bool {
	if g.boxes[g.turn].RemainingCount() == 0 {
		return true
	}
	for _, s := range piece.Shapes {
		for r := 0; r < board.NumRows; r++ {
			for c := 0; c < board.NumCols; c++ {
				if g.IsLegalMove(r, c, s) {
					return false
				}
			}
		}
	}
	return true
}

// LegalMoves lists every legal placement for the player on turn, by shape
// and then by cell in row-major order.
func (g *Game) LegalMoves() []move.Move {
	var moves []move.Move
	for _, s := range piece.Shapes {
		for r := 0; r < board.NumRows; r++ {
			for c := 0; c < board.NumCols; c++ {
				if g.IsLegalMove(r, c, s) {
					moves = append(moves, move.NewMove(r, c, s, g.turn))
				}
			}
		}
	}
	return moves
}

// HasWinningGroup returns whether some group holds four distinct shapes.
func (g *Game) HasWinningGroup() bool {
	return g.groups.HasWinningGroup()
}

// IsOver returns whether the game has ended.
func (g *Game) IsOver() bool {
	return g.HasWinningGroup() || g.IsBlocked()
}

// Winner returns the winning color once the game is over.
//
// A completed group is credited to the player currently on turn, so the
// answer is only meaningful if it is asked right after Place and before
// SwitchTurn. A blockage is credited to the opponent of the blocked
// player.
func (g *Game) Winner() (piece.Color, bool) {
	if g.HasWinningGroup() {
		return g.turn, true
	}
	if g.IsBlocked() {
		return g.turn.Opposite(), true
	}
	return piece.White, false
}

// Board returns a copy of the board.
func (g *Game) Board() *board.Board {
	return g.board.Copy()
}

// Box returns a copy of the box of the given color.
func (g *Game) Box(c piece.Color) *box.Box {
	return g.boxes[c].Copy()
}

// Turn is the color on turn.
func (g *Game) Turn() piece.Color {
	return g.turn
}

// MoveCount is the number of placements made so far.
func (g *Game) MoveCount() int {
	return g.moves
}

// Groups lists the board's groups, bound to a copy of the board.
func (g *Game) Groups() []board.Group {
	return board.NewGroupManager(g.board.Copy()).Groups()
}

// Copy returns a deep, independent copy of the game.
func (g *Game) Copy() *Game {
	b := g.board.Copy()
	return &Game{
		board:  b,
		groups: board.NewGroupManager(b),
		boxes:  [piece.NumColors]*box.Box{g.boxes[0].Copy(), g.boxes[1].Copy()},
		turn:   g.turn,
		moves:  g.moves,
	}
}

// Equals compares two games by position, boxes, turn and move count.
func (g *Game) Equals(other *Game) bool {
	if g.turn != other.turn || g.moves != other.moves {
		return false
	}
	for _, c := range piece.Colors {
		if g.boxes[c].RemainingCount() != other.boxes[c].RemainingCount() {
			return false
		}
		for _, s := range piece.Shapes {
			if g.boxes[c].CountOf(s) != other.boxes[c].CountOf(s) {
				return false
			}
		}
	}
	return g.board.Equals(other.board)
}
