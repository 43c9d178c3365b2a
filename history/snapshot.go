package history

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quantikgo/quantik/game"
	"github.com/quantikgo/quantik/piece"
)

// Snapshot stores a full copy of the game after every move.
type Snapshot struct {
	base
	games []*game.Game
}

func NewSnapshot(start time.Time) *Snapshot {
	return &Snapshot{base: newBase(start)}
}

func (s *Snapshot) Mode() Mode {
	return SnapshotMode
}

func (s *Snapshot) last() *game.Game {
	if len(s.games) == 0 {
		return s.initial
	}
	return s.games[len(s.games)-1]
}

func (s *Snapshot) RecordMove(row, col int, shape piece.Shape, color piece.Color) error {
	if err := s.checkBounds(row, col); err != nil {
		return err
	}
	g := s.last().Copy()
	if err := g.Place(row, col, shape); err != nil {
		panic(fmt.Sprintf("bounds-checked move failed: %v", err))
	}
	g.SwitchTurn()
	s.games = append(s.games, g)
	log.Debug().Int("row", row).Int("col", col).Str("shape", shape.String()).
		Int("recorded", len(s.games)).Msg("snapshot-record")
	return nil
}

func (s *Snapshot) Undo() {
	if len(s.games) == 0 {
		return
	}
	s.games[len(s.games)-1] = nil
	s.games = s.games[:len(s.games)-1]
}

// CurrentGame returns a copy of the latest snapshot, so callers cannot
// alter the stored history.
func (s *Snapshot) CurrentGame() *game.Game {
	return s.last().Copy()
}

func (s *Snapshot) RecordedCount() int {
	return len(s.games)
}

func (s *Snapshot) Reset() {
	s.games = nil
}
