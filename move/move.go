// Package move defines the record of a single placement.
package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quantikgo/quantik/piece"
)

// Move is a placement: a shape of one color put on (row, col). Moves are
// plain values; a Move does not know whether it was legal.
type Move struct {
	row   int
	col   int
	shape piece.Shape
	color piece.Color
}

var reNotation *regexp.Regexp

func init() {
	reNotation = regexp.MustCompile(`^(?P<row>-?[0-9]+),(?P<col>-?[0-9]+)\s+(?P<shape>[A-Za-z]{2})(?P<color>[WBwb])$`)
}

// NewMove creates a move.
func NewMove(row, col int, shape piece.Shape, color piece.Color) Move {
	return Move{row: row, col: col, shape: shape, color: color}
}

func (m Move) Row() int {
	return m.row
}

func (m Move) Col() int {
	return m.col
}

func (m Move) Shape() piece.Shape {
	return m.shape
}

func (m Move) Color() piece.Color {
	return m.color
}

// Piece is the piece the move puts on the board.
func (m Move) Piece() piece.Piece {
	return piece.New(m.shape, m.color)
}

// ShortDescription is the compact notation, e.g. "1,2 CNB".
func (m Move) ShortDescription() string {
	return fmt.Sprintf("%d,%d %s", m.row, m.col, m.Piece().Text())
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	return fmt.Sprintf("<move (%d,%d) %v>", m.row, m.col, m.Piece())
}

// FromNotation parses the ShortDescription form back into a Move.
func FromNotation(s string) (Move, error) {
	match := reNotation.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Move{}, fmt.Errorf("unrecognized move notation: %q", s)
	}
	row, err := strconv.Atoi(match[1])
	if err != nil {
		return Move{}, err
	}
	col, err := strconv.Atoi(match[2])
	if err != nil {
		return Move{}, err
	}
	shape, err := piece.ParseShape(match[3])
	if err != nil {
		return Move{}, err
	}
	color, err := piece.ParseColor(match[4])
	if err != nil {
		return Move{}, err
	}
	return NewMove(row, col, shape, color), nil
}
