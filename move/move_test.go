package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantikgo/quantik/piece"
)

func TestShortDescription(t *testing.T) {
	m := NewMove(1, 2, piece.Cone, piece.Black)
	assert.Equal(t, "1,2 CNB", m.ShortDescription())
	assert.Equal(t, piece.New(piece.Cone, piece.Black), m.Piece())
}

func TestFromNotation(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Move
	}{
		{"0,0 CLW", NewMove(0, 0, piece.Cylinder, piece.White)},
		{"3,1 spb", NewMove(3, 1, piece.Sphere, piece.Black)},
		{"  2,3 CBW ", NewMove(2, 3, piece.Cube, piece.White)},
		{"-1,4 CNW", NewMove(-1, 4, piece.Cone, piece.White)},
	} {
		m, err := FromNotation(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, m)
	}
}

func TestFromNotationErrors(t *testing.T) {
	for _, in := range []string{"", "1 2 CLW", "1,2 XXW", "1,2 CLR", "a,2 CLW"} {
		_, err := FromNotation(in)
		assert.Error(t, err, in)
	}
}
