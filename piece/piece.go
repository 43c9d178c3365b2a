// Package piece holds the small value types of a Quantik game: the two
// colors, the four shapes, and the piece formed by pairing them.
package piece

import (
	"fmt"
	"strings"
)

// Color is the side a piece (or a player) belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// NumColors is always 2.
const NumColors = 2

// Colors lists both colors, White first.
var Colors = [NumColors]Color{White, Black}

// Opposite returns the other color. Opposite(Opposite(c)) == c.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Letter is the one-letter tag used in piece text.
func (c Color) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white"/"black" or their first letters,
// case-insensitively.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unrecognized color: %q", s)
}

// Shape is one of the four Quantik shapes. Shapes have no ordering beyond
// identity; the numeric values only index tables.
type Shape uint8

const (
	Cylinder Shape = iota
	Cone
	Cube
	Sphere
)

// NumShapes is the number of distinct shapes.
const NumShapes = 4

// Shapes lists every shape in a fixed order.
var Shapes = [NumShapes]Shape{Cylinder, Cone, Cube, Sphere}

var shapeCodes = [NumShapes]string{"CL", "CN", "CB", "SP"}
var shapeNames = [NumShapes]string{"cylinder", "cone", "cube", "sphere"}

// Code returns the two-letter code for the shape.
func (s Shape) Code() string {
	if int(s) >= NumShapes {
		return "??"
	}
	return shapeCodes[s]
}

func (s Shape) String() string {
	if int(s) >= NumShapes {
		return fmt.Sprintf("shape(%d)", s)
	}
	return shapeNames[s]
}

// ParseShape parses a shape from its two-letter code or its English name.
func ParseShape(s string) (Shape, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i := range Shapes {
		if t == strings.ToLower(shapeCodes[i]) || t == shapeNames[i] {
			return Shapes[i], nil
		}
	}
	return Cylinder, fmt.Errorf("unrecognized shape: %q", s)
}

// Piece is an immutable (shape, color) pair. Pieces compare with ==.
type Piece struct {
	shape Shape
	color Color
}

// New creates a piece.
func New(shape Shape, color Color) Piece {
	return Piece{shape: shape, color: color}
}

func (p Piece) Shape() Shape {
	return p.shape
}

func (p Piece) Color() Color {
	return p.color
}

// Text is the compact form used on the board display, e.g. "CLW".
func (p Piece) Text() string {
	return p.shape.Code() + string(p.color.Letter())
}

func (p Piece) String() string {
	return fmt.Sprintf("%v %v", p.color, p.shape)
}
