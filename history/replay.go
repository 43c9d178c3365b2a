package history

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quantikgo/quantik/game"
	"github.com/quantikgo/quantik/move"
	"github.com/quantikgo/quantik/piece"
)

// Replay stores moves only.
type Replay struct {
	base
	moves []move.Move
}

func NewReplay(start time.Time) *Replay {
	return &Replay{base: newBase(start)}
}

func (r *Replay) Mode() Mode {
	return ReplayMode
}

func (r *Replay) RecordMove(row, col int, shape piece.Shape, color piece.Color) error {
	if err := r.checkBounds(row, col); err != nil {
		return err
	}
	r.moves = append(r.moves, move.NewMove(row, col, shape, color))
	log.Debug().Int("row", row).Int("col", col).Str("shape", shape.String()).
		Int("recorded", len(r.moves)).Msg("replay-record")
	return nil
}

func (r *Replay) Undo() {
	if len(r.moves) == 0 {
		return
	}
	r.moves = r.moves[:len(r.moves)-1]
}

// CurrentGame replays every recorded move on a fresh copy of the initial
// game.
func (r *Replay) CurrentGame() *game.Game {
	g := r.initial.Copy()
	for _, m := range r.moves {
		if err := g.Place(m.Row(), m.Col(), m.Shape()); err != nil {
			panic(fmt.Sprintf("recorded move failed to replay: %v", err))
		}
		g.SwitchTurn()
	}
	return g
}

func (r *Replay) RecordedCount() int {
	return len(r.moves)
}

// Moves returns a copy of the recorded moves, oldest first.
func (r *Replay) Moves() []move.Move {
	out := make([]move.Move, len(r.moves))
	copy(out, r.moves)
	return out
}

func (r *Replay) Reset() {
	r.moves = nil
}
