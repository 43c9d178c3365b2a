// Package box implements a player's supply of pieces.
package box

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/quantikgo/quantik/piece"
)

// PerShape is how many copies of each shape a box starts with.
const PerShape = 2

// Capacity is the number of pieces in a full box.
const Capacity = PerShape * piece.NumShapes

// A Box holds the pieces of one color that have not been played yet.
// Counts only ever go down.
type Box struct {
	color     piece.Color
	numPieces int
	shapeMap  [piece.NumShapes]uint8
}

// New returns a full box for the given color.
func New(color piece.Color) *Box {
	b := &Box{color: color, numPieces: Capacity}
	for i := range b.shapeMap {
		b.shapeMap[i] = PerShape
	}
	return b
}

func (b *Box) Color() piece.Color {
	return b.color
}

// IsAvailable returns whether at least one piece of the shape remains.
func (b *Box) IsAvailable(shape piece.Shape) bool {
	return b.CountOf(shape) > 0
}

// CountOf returns how many pieces of the shape remain.
func (b *Box) CountOf(shape piece.Shape) int {
	if int(shape) >= piece.NumShapes {
		return 0
	}
	return int(b.shapeMap[shape])
}

// Withdraw takes a piece of the shape out of the box. It returns false and
// leaves the box untouched when no such piece remains.
func (b *Box) Withdraw(shape piece.Shape) (piece.Piece, bool) {
	if !b.IsAvailable(shape) {
		log.Debug().Str("color", b.color.String()).Str("shape", shape.String()).
			Msg("withdraw-unavailable")
		return piece.Piece{}, false
	}
	b.shapeMap[shape]--
	b.numPieces--
	return piece.New(shape, b.color), true
}

// RemainingCount is the number of pieces left in the box.
func (b *Box) RemainingCount() int {
	return b.numPieces
}

// Available lists the remaining pieces in shape order.
func (b *Box) Available() []piece.Piece {
	return lo.FlatMap(piece.Shapes[:], func(s piece.Shape, _ int) []piece.Piece {
		return lo.Times(int(b.shapeMap[s]), func(_ int) piece.Piece {
			return piece.New(s, b.color)
		})
	})
}

// Copy returns an independent copy of the box.
func (b *Box) Copy() *Box {
	n := &Box{}
	n.CopyFrom(b)
	return n
}

// CopyFrom overwrites this box with the contents of another.
func (b *Box) CopyFrom(other *Box) {
	b.color = other.color
	b.numPieces = other.numPieces
	b.shapeMap = other.shapeMap
}

func (b *Box) String() string {
	texts := lo.Map(b.Available(), func(p piece.Piece, _ int) string {
		return p.Text()
	})
	return fmt.Sprintf("%v box (%d): %s", b.color, b.numPieces, strings.Join(texts, " "))
}
