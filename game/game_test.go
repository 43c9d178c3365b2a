package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/quantikgo/quantik/board"
	"github.com/quantikgo/quantik/box"
	"github.com/quantikgo/quantik/piece"
)

func placeAndSwitch(t *testing.T, g *Game, row, col int, s piece.Shape) {
	t.Helper()
	if !g.IsLegalMove(row, col, s) {
		t.Fatalf("expected (%d, %d) %v to be legal for %v", row, col, s, g.Turn())
	}
	if err := g.Place(row, col, s); err != nil {
		t.Fatal(err)
	}
	g.SwitchTurn()
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(g.Turn(), piece.White)
	is.Equal(g.MoveCount(), 0)
	is.True(g.Board().IsEmpty())
	is.Equal(g.Box(piece.White).RemainingCount(), 8)
	is.Equal(g.Box(piece.Black).RemainingCount(), 8)
	is.True(!g.IsOver())
	is.Equal(len(g.LegalMoves()), 64)
	_, ok := g.Winner()
	is.True(!ok)
}

func TestSwitchTurn(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.SwitchTurn()
	is.Equal(g.Turn(), piece.Black)
	g.SwitchTurn()
	is.Equal(g.Turn(), piece.White)
}

func TestIsLegalMove(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.True(!g.IsLegalMove(-1, 0, piece.Cone))
	is.True(!g.IsLegalMove(0, 4, piece.Cone))

	placeAndSwitch(t, g, 1, 1, piece.Cone)
	// occupied
	is.True(!g.IsLegalMove(1, 1, piece.Cube))
	// same shape as an opponent piece in the row, column and quadrant
	is.True(!g.IsLegalMove(1, 3, piece.Cone))
	is.True(!g.IsLegalMove(3, 1, piece.Cone))
	is.True(!g.IsLegalMove(0, 0, piece.Cone))
	is.True(g.IsLegalMove(3, 3, piece.Cone))
	is.True(g.IsLegalMove(1, 3, piece.Cube))

	g.SwitchTurn()
	// the mover's own pieces never conflict
	is.True(g.IsLegalMove(1, 3, piece.Cone))
}

func TestShapeMustBeInBox(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	placeAndSwitch(t, g, 0, 0, piece.Sphere)
	placeAndSwitch(t, g, 3, 0, piece.Cube)
	placeAndSwitch(t, g, 0, 3, piece.Sphere)
	placeAndSwitch(t, g, 3, 3, piece.Cube)
	is.Equal(g.Box(piece.White).CountOf(piece.Sphere), 0)
	is.True(!g.IsLegalMove(2, 1, piece.Sphere))
	is.Equal(g.MoveCount(), 4)
}

func TestPlaceOutOfBounds(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	err := g.Place(4, 4, piece.Cube)
	is.True(errors.Is(err, ErrOutOfBounds))
	is.Equal(g.MoveCount(), 0)
	is.Equal(g.Box(piece.White).RemainingCount(), 8)
}

func TestPlaceCountsEvenWhenNothingPlaced(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.Place(0, 0, piece.Cube))
	// occupied cell: the piece leaves the box but the board keeps the
	// first piece
	is.NoErr(g.Place(0, 0, piece.Cube))
	is.Equal(g.MoveCount(), 2)
	is.Equal(g.Box(piece.White).CountOf(piece.Cube), 0)
	is.Equal(g.Board().NumPieces(), 1)

	// empty slot in the box: nothing is withdrawn or placed
	is.NoErr(g.Place(1, 1, piece.Cube))
	is.Equal(g.MoveCount(), 3)
	is.Equal(g.Board().NumPieces(), 1)
}

func TestWinnerIsCreditedToTurn(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	placeAndSwitch(t, g, 0, 0, piece.Cylinder)
	placeAndSwitch(t, g, 0, 1, piece.Cone)
	placeAndSwitch(t, g, 0, 2, piece.Cube)

	is.Equal(g.Turn(), piece.Black)
	is.True(g.IsLegalMove(0, 3, piece.Sphere))
	is.NoErr(g.Place(0, 3, piece.Sphere))
	is.True(g.HasWinningGroup())
	is.True(g.IsOver())

	// Asked before the turn switch, the mover wins.
	w, ok := g.Winner()
	is.True(ok)
	is.Equal(w, piece.Black)

	// Asked after the switch, the answer flips. This coupling is
	// deliberate; callers must ask before switching.
	g.SwitchTurn()
	w, ok = g.Winner()
	is.True(ok)
	is.Equal(w, piece.White)
}

func blockedPosition() *Game {
	b := board.NewBoard()
	place := func(r, c int, s piece.Shape, col piece.Color) {
		p := piece.New(s, col)
		if err := b.Place(r, c, &p); err != nil {
			panic(err)
		}
	}
	place(0, 0, piece.Cylinder, piece.Black)
	place(3, 3, piece.Cylinder, piece.Black)
	place(1, 2, piece.Cube, piece.White)
	place(2, 1, piece.Cone, piece.Black)

	white := box.New(piece.White)
	for _, s := range []piece.Shape{piece.Cone, piece.Cube, piece.Sphere} {
		white.Withdraw(s)
		white.Withdraw(s)
	}
	return NewFromParts(b, white, box.New(piece.Black))
}

func TestBlocked(t *testing.T) {
	is := is.New(t)
	g := blockedPosition()
	is.Equal(g.Turn(), piece.White)
	is.Equal(g.Box(piece.White).RemainingCount(), 2)
	is.True(!g.HasWinningGroup())
	is.True(g.IsBlocked())
	is.True(g.IsOver())
	is.Equal(len(g.LegalMoves()), 0)

	w, ok := g.Winner()
	is.True(ok)
	is.Equal(w, piece.Black)

	// Black is not blocked in the same position.
	g.SwitchTurn()
	is.True(!g.IsBlocked())
}

func TestEmptyBoxIsBlocked(t *testing.T) {
	is := is.New(t)
	white := box.New(piece.White)
	for _, s := range piece.Shapes {
		white.Withdraw(s)
		white.Withdraw(s)
	}
	g := NewFromParts(board.NewBoard(), white, box.New(piece.Black))
	is.True(g.IsBlocked())
	w, ok := g.Winner()
	is.True(ok)
	is.Equal(w, piece.Black)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	placeAndSwitch(t, g, 2, 2, piece.Cube)
	c := g.Copy()
	is.True(c.Equals(g))

	placeAndSwitch(t, c, 0, 0, piece.Cube)
	is.True(!c.Equals(g))
	is.Equal(g.MoveCount(), 1)
	is.Equal(g.Board().NumPieces(), 1)
	is.Equal(g.Box(piece.Black).RemainingCount(), 8)
	is.Equal(g.Turn(), piece.Black)
	// the copy's groups follow the copy's board
	is.True(!c.IsLegalMove(0, 1, piece.Cube))
	is.True(g.IsLegalMove(0, 1, piece.Cube))
}

func TestQueriesReturnCopies(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	b := g.Board()
	p := piece.New(piece.Cone, piece.Black)
	is.NoErr(b.Place(0, 0, &p))
	bx := g.Box(piece.White)
	bx.Withdraw(piece.Cone)

	is.True(g.Board().IsEmpty())
	is.Equal(g.Box(piece.White).RemainingCount(), 8)
	is.True(g.IsLegalMove(0, 0, piece.Cone))
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	placeAndSwitch(t, g, 0, 0, piece.Cylinder)
	txt := g.ToDisplayText()
	is.True(len(txt) > 0)
	is.True(strings.Contains(txt, "-CLW-"))
	is.True(strings.Contains(txt, "-> black box (8)"))
	is.True(strings.Contains(txt, "white box (7)"))
	is.True(!strings.Contains(txt, "Game is over."))
}

func TestConflictIsColorSymmetric(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.SwitchTurn()
	// black cube at (2,3); white may not put a cube in row 2, column 3
	// or the bottom-right quadrant
	placeAndSwitch(t, g, 2, 3, piece.Cube)
	is.Equal(g.Turn(), piece.White)
	is.True(!g.IsLegalMove(2, 0, piece.Cube))
	is.True(!g.IsLegalMove(0, 3, piece.Cube))
	is.True(!g.IsLegalMove(3, 2, piece.Cube))
	is.True(g.IsLegalMove(0, 0, piece.Cube))
}

func TestQuadrantWin(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	placeAndSwitch(t, g, 0, 0, piece.Sphere)
	placeAndSwitch(t, g, 1, 0, piece.Cone)
	placeAndSwitch(t, g, 0, 1, piece.Cylinder)
	is.True(!g.IsOver())

	is.Equal(g.Turn(), piece.Black)
	is.True(g.IsLegalMove(1, 1, piece.Cube))
	is.NoErr(g.Place(1, 1, piece.Cube))
	is.True(g.IsOver())
	w, ok := g.Winner()
	is.True(ok)
	is.Equal(w, piece.Black)
}
