// Package history keeps the moves of a game so they can be undone. Two
// interchangeable mechanisms are provided: Replay stores the moves and
// rebuilds the game on demand, Snapshot stores a full game copy per move.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantikgo/quantik/board"
	"github.com/quantikgo/quantik/game"
	"github.com/quantikgo/quantik/piece"
)

// ErrOutOfBounds is returned when a move addresses a cell outside the board.
var ErrOutOfBounds = board.ErrOutOfBounds

// Mode selects a history mechanism.
type Mode int

const (
	// ReplayMode keeps only the moves, and replays them from the initial
	// game every time the current game is asked for.
	ReplayMode Mode = iota
	// SnapshotMode keeps a copy of the game after every move.
	SnapshotMode
)

func (m Mode) String() string {
	switch m {
	case ReplayMode:
		return "replay"
	case SnapshotMode:
		return "snapshot"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses "replay" or "snapshot".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replay":
		return ReplayMode, nil
	case "snapshot":
		return SnapshotMode, nil
	}
	return ReplayMode, fmt.Errorf("unrecognized history mode: %q", s)
}

// Mechanism records moves and reconstructs the current game. The two
// implementations are observationally equivalent.
type Mechanism interface {
	// RecordMove applies a move on top of the current game: the shape is
	// placed for the player on turn and the turn is switched. The color is
	// kept for the record only. Legality is not checked.
	RecordMove(row, col int, shape piece.Shape, color piece.Color) error
	// Undo discards the last recorded move. It does nothing when the
	// history is empty.
	Undo()
	// CurrentGame returns a game the caller may freely modify.
	CurrentGame() *game.Game
	RecordedCount() int
	StartTime() time.Time
	Mode() Mode
	// Reset discards every recorded move. The start time is kept.
	Reset()
}

// New creates an empty mechanism of the given mode.
func New(mode Mode, start time.Time) (Mechanism, error) {
	switch mode {
	case ReplayMode:
		return NewReplay(start), nil
	case SnapshotMode:
		return NewSnapshot(start), nil
	}
	return nil, fmt.Errorf("unsupported history mode: %v", mode)
}

// base holds what both mechanisms share: the start time, the board size the
// history was created for, and the untouched initial game.
type base struct {
	start   time.Time
	rows    int
	cols    int
	initial *game.Game
}

func newBase(start time.Time) base {
	return base{
		start:   start,
		rows:    board.NumRows,
		cols:    board.NumCols,
		initial: game.NewGame(),
	}
}

func (b *base) StartTime() time.Time {
	return b.start
}

func (b *base) checkBounds(row, col int) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return board.OutOfBounds(row, col)
	}
	return nil
}
