package game

import (
	"fmt"
	"strings"

	"github.com/quantikgo/quantik/piece"
)

// ToDisplayText renders the board followed by both boxes and the turn.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	sb.WriteString("\n")
	for _, c := range piece.Colors {
		marker := "  "
		if c == g.turn {
			marker = "->"
		}
		fmt.Fprintf(&sb, "%s %s\n", marker, g.boxes[c].String())
	}
	fmt.Fprintf(&sb, "Moves: %d", g.moves)
	if g.IsOver() {
		sb.WriteString("\nGame is over.")
	}
	return sb.String()
}
