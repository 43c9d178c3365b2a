package piece

import (
	"testing"

	"github.com/matryer/is"
)

func TestOpposite(t *testing.T) {
	is := is.New(t)
	is.Equal(White.Opposite(), Black)
	is.Equal(Black.Opposite(), White)
	for _, c := range Colors {
		is.Equal(c.Opposite().Opposite(), c)
	}
}

func TestParseShape(t *testing.T) {
	is := is.New(t)
	for _, s := range Shapes {
		p, err := ParseShape(s.Code())
		is.NoErr(err)
		is.Equal(p, s)
		p, err = ParseShape(s.String())
		is.NoErr(err)
		is.Equal(p, s)
	}
	s, err := ParseShape("sP")
	is.NoErr(err)
	is.Equal(s, Sphere)
	_, err = ParseShape("pyramid")
	is.True(err != nil)
}

func TestParseColor(t *testing.T) {
	is := is.New(t)
	c, err := ParseColor("B")
	is.NoErr(err)
	is.Equal(c, Black)
	c, err = ParseColor("White")
	is.NoErr(err)
	is.Equal(c, White)
	_, err = ParseColor("red")
	is.True(err != nil)
}

func TestPieceText(t *testing.T) {
	is := is.New(t)
	is.Equal(New(Cylinder, White).Text(), "CLW")
	is.Equal(New(Sphere, Black).Text(), "SPB")
	is.Equal(New(Cone, Black).String(), "black cone")
	is.True(New(Cube, White) == New(Cube, White))
	is.True(New(Cube, White) != New(Cube, Black))
}
