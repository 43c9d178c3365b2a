package zobrist

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/quantikgo/quantik/game"
	"github.com/quantikgo/quantik/piece"
)

func TestIncrementalMatchesFull(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	g := game.NewGame()
	key := z.Hash(g)
	for !g.IsOver() {
		legal := g.LegalMoves()
		m := legal[frand.Intn(len(legal))]
		before := g.Box(g.Turn()).CountOf(m.Shape())
		key = z.AddPlacement(key, m.Row(), m.Col(), piece.New(m.Shape(), g.Turn()), before)
		is.NoErr(g.Place(m.Row(), m.Col(), m.Shape()))
		g.SwitchTurn()
		key = z.SwitchTurn(key)
		is.Equal(key, z.Hash(g))
	}
}

func TestPlayAndUnplay(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	g := game.NewGame()
	h := z.Hash(g)
	p := piece.New(piece.Cone, piece.White)
	h1 := z.AddPlacement(h, 2, 3, p, 2)
	h1 = z.SwitchTurn(h1)
	is.True(h1 != h)
	// XOR is its own inverse.
	h2 := z.SwitchTurn(h1)
	h2 = z.AddPlacement(h2, 2, 3, p, 2)
	is.Equal(h, h2)
}

func TestTurnIsPartOfKey(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()
	g := game.NewGame()
	h := z.Hash(g)
	g.SwitchTurn()
	is.True(z.Hash(g) != h)
	is.Equal(z.SwitchTurn(h), z.Hash(g))
}
