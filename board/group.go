package board

import (
	"fmt"
	"strings"

	"github.com/quantikgo/quantik/piece"
)

// GroupSize is the number of cells in every group.
const GroupSize = 4

// NumGroups is the number of groups on a board: four rows, four columns
// and four quadrants.
const NumGroups = 12

type GroupKind uint8

const (
	RowGroup GroupKind = iota
	ColumnGroup
	QuadrantGroup
)

func (k GroupKind) String() string {
	switch k {
	case RowGroup:
		return "row"
	case ColumnGroup:
		return "column"
	case QuadrantGroup:
		return "quadrant"
	}
	return fmt.Sprintf("groupkind(%d)", k)
}

// Coord addresses a cell.
type Coord struct {
	Row int
	Col int
}

// A Group is a fixed list of four cells of one board. The group reads the
// board live; it never caches cell contents.
type Group struct {
	kind   GroupKind
	index  int
	coords [GroupSize]Coord
	board  *Board
}

func newGroup(b *Board, kind GroupKind, index int, coords [GroupSize]Coord) Group {
	for _, co := range coords {
		if !IsInBounds(co.Row, co.Col) {
			panic(fmt.Sprintf("group %v %d built with bad coordinates %v", kind, index, co))
		}
	}
	return Group{kind: kind, index: index, coords: coords, board: b}
}

func (g Group) Kind() GroupKind {
	return g.kind
}

func (g Group) Index() int {
	return g.index
}

// Coords returns the group's coordinates in their fixed order.
func (g Group) Coords() []Coord {
	out := make([]Coord, GroupSize)
	copy(out, g.coords[:])
	return out
}

// Contains returns whether (row, col) is one of the group's cells.
func (g Group) Contains(row, col int) bool {
	for _, co := range g.coords {
		if co.Row == row && co.Col == col {
			return true
		}
	}
	return false
}

// NumPieces counts the occupied cells of the group.
func (g Group) NumPieces() int {
	n := 0
	for _, co := range g.coords {
		if !g.board.cell(co.Row, co.Col).IsEmpty() {
			n++
		}
	}
	return n
}

// IsCompleteWithDistinctShapes returns whether all four cells are occupied
// and their shapes are pairwise distinct. Piece colors do not matter.
func (g Group) IsCompleteWithDistinctShapes() bool {
	if g.NumPieces() != GroupSize {
		return false
	}
	var s [GroupSize]piece.Shape
	for i, co := range g.coords {
		s[i] = g.board.cell(co.Row, co.Col).piece.Shape()
	}
	return s[0] != s[1] && s[0] != s[2] && s[0] != s[3] &&
		s[1] != s[2] && s[1] != s[3] &&
		s[2] != s[3]
}

// HasOpposingPiece returns whether the group holds a piece of the given
// shape belonging to the opponent of mover.
func (g Group) HasOpposingPiece(shape piece.Shape, mover piece.Color) bool {
	for _, co := range g.coords {
		p, ok := g.board.cell(co.Row, co.Col).Piece()
		if ok && p.Shape() == shape && p.Color() != mover {
			return true
		}
	}
	return false
}

func (g Group) String() string {
	parts := make([]string, GroupSize)
	for i, co := range g.coords {
		parts[i] = g.board.cell(co.Row, co.Col).String()
	}
	return fmt.Sprintf("%v %d [%s]", g.kind, g.index, strings.Join(parts, " "))
}
