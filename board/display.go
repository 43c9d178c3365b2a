package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board as a tab-separated grid with numeric
// row and column headers. Empty cells show as "-----" and occupied ones as
// "-CLW-" style tokens.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for c := 0; c < NumCols; c++ {
		fmt.Fprintf(&sb, "\t %d", c)
	}
	sb.WriteString("\n")
	for r := 0; r < NumRows; r++ {
		fmt.Fprintf(&sb, "%d", r)
		for c := 0; c < NumCols; c++ {
			sb.WriteString("\t")
			sb.WriteString(b.cells[r][c].DisplayString())
		}
		sb.WriteString("\n")
		if r != NumRows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
