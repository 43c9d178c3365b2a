package board

import (
	"github.com/samber/lo"

	"github.com/quantikgo/quantik/piece"
)

// GroupManager owns the twelve groups of one board and answers the
// group-level rule queries.
type GroupManager struct {
	board  *Board
	groups []Group
}

// NewGroupManager builds the groups for b in a fixed order: rows, then
// columns, then quadrants. Quadrants are scanned left to right, top to
// bottom, with row-major order inside each one.
func NewGroupManager(b *Board) *GroupManager {
	gm := &GroupManager{board: b, groups: make([]Group, 0, NumGroups)}

	for r := 0; r < NumRows; r++ {
		var coords [GroupSize]Coord
		for c := 0; c < NumCols; c++ {
			coords[c] = Coord{r, c}
		}
		gm.groups = append(gm.groups, newGroup(b, RowGroup, r, coords))
	}
	for c := 0; c < NumCols; c++ {
		var coords [GroupSize]Coord
		for r := 0; r < NumRows; r++ {
			coords[r] = Coord{r, c}
		}
		gm.groups = append(gm.groups, newGroup(b, ColumnGroup, c, coords))
	}
	q := 0
	for qr := 0; qr < NumRows; qr += 2 {
		for qc := 0; qc < NumCols; qc += 2 {
			coords := [GroupSize]Coord{
				{qr, qc}, {qr, qc + 1},
				{qr + 1, qc}, {qr + 1, qc + 1},
			}
			gm.groups = append(gm.groups, newGroup(b, QuadrantGroup, q, coords))
			q++
		}
	}
	return gm
}

// Groups returns the groups in construction order.
func (gm *GroupManager) Groups() []Group {
	out := make([]Group, len(gm.groups))
	copy(out, gm.groups)
	return out
}

// GroupsContaining returns every group that contains the cell's coordinates.
// For an in-bounds cell that is always exactly three groups.
func (gm *GroupManager) GroupsContaining(cell Cell) []Group {
	return lo.Filter(gm.groups, func(g Group, _ int) bool {
		return g.Contains(cell.row, cell.col)
	})
}

// HasConflict returns whether placing shape for mover on cell would share
// a group with an opponent's piece of the same shape.
func (gm *GroupManager) HasConflict(cell Cell, shape piece.Shape, mover piece.Color) bool {
	return lo.SomeBy(gm.GroupsContaining(cell), func(g Group) bool {
		return g.HasOpposingPiece(shape, mover)
	})
}

// HasWinningGroup returns whether any group is full with four distinct
// shapes.
func (gm *GroupManager) HasWinningGroup() bool {
	return lo.SomeBy(gm.groups, func(g Group) bool {
		return g.IsCompleteWithDistinctShapes()
	})
}

// WinningGroups lists the groups that are full with four distinct shapes.
func (gm *GroupManager) WinningGroups() []Group {
	return lo.Filter(gm.groups, func(g Group, _ int) bool {
		return g.IsCompleteWithDistinctShapes()
	})
}
