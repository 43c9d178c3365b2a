package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/quantikgo/quantik/board"
	"github.com/quantikgo/quantik/config"
	"github.com/quantikgo/quantik/game"
	"github.com/quantikgo/quantik/history"
	"github.com/quantikgo/quantik/move"
	"github.com/quantikgo/quantik/piece"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) currentGame() *game.Game {
	return sc.history.CurrentGame()
}

func (sc *ShellController) display(g *game.Game) string {
	return fmt.Sprintf("%s\nPosition key: %016x", g.ToDisplayText(), sc.zobrist.Hash(g))
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	modeStr := cmd.options.String("mode")
	if modeStr == "" {
		modeStr = sc.config.GetString(config.ConfigHistoryMode)
	}
	mode, err := history.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	h, err := history.New(mode, time.Now())
	if err != nil {
		return nil, err
	}
	sc.history = h
	log.Info().Str("mode", mode.String()).Msg("new-game")
	return msg(sc.display(sc.currentGame())), nil
}

func parseCoords(rowStr, colStr string) (int, int, error) {
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q", rowStr)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, fmt.Errorf("bad column %q", colStr)
	}
	return row, col, nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 3 {
		return nil, errors.New("usage: play <row> <col> <shape>")
	}
	row, col, err := parseCoords(cmd.args[0], cmd.args[1])
	if err != nil {
		return nil, err
	}
	shape, err := piece.ParseShape(cmd.args[2])
	if err != nil {
		return nil, err
	}
	return sc.playMove(row, col, shape)
}

// playMove validates and records a placement for the player on turn and
// announces the result.
func (sc *ShellController) playMove(row, col int, shape piece.Shape) (*Response, error) {
	g := sc.currentGame()
	if g.IsOver() {
		return nil, errors.New("the game is over; start a new one or undo")
	}
	if !board.IsInBounds(row, col) {
		return nil, board.OutOfBounds(row, col)
	}
	mover := g.Turn()
	if !g.IsLegalMove(row, col, shape) {
		return nil, fmt.Errorf("illegal move for %v: %v at (%d, %d)", mover, shape, row, col)
	}

	// A completed group belongs to the mover, and must be read before the
	// turn switches.
	if err := g.Place(row, col, shape); err != nil {
		return nil, err
	}
	completed := g.HasWinningGroup()

	if err := sc.history.RecordMove(row, col, shape, mover); err != nil {
		return nil, err
	}
	next := sc.currentGame()

	var result string
	var winner string
	switch {
	case completed:
		winner = mover.String()
		result = fmt.Sprintf("%v completes a group and wins!", mover)
	case next.IsBlocked():
		w, _ := next.Winner()
		winner = w.String()
		result = fmt.Sprintf("%v has no legal moves; %v wins!", next.Turn(), w)
	}

	m := move.NewMove(row, col, shape, mover)
	if sc.turnLog != nil {
		entry := TurnLogEntry{
			Seq:    sc.history.RecordedCount(),
			Time:   time.Now().UTC().Format(time.RFC3339),
			Mode:   sc.history.Mode().String(),
			Player: mover.String(),
			Move:   m.ShortDescription(),
			Key:    fmt.Sprintf("%016x", sc.zobrist.Hash(next)),
			Winner: winner,
		}
		if err := sc.turnLog.Append(entry); err != nil {
			log.Err(err).Msg("turn-log-append-failed")
		}
	}
	log.Debug().Str("move", m.ShortDescription()).Str("winner", winner).Msg("played")

	out := sc.display(next)
	if result != "" {
		out += "\n" + result
	}
	return msg(out), nil
}

func (sc *ShellController) legalMoves() []string {
	return lo.Map(sc.currentGame().LegalMoves(), func(m move.Move, _ int) string {
		return m.ShortDescription()
	})
}

func (sc *ShellController) legal(cmd *shellcmd) (*Response, error) {
	moves := sc.legalMoves()
	if len(moves) == 0 {
		return msg("No legal moves."), nil
	}
	return msg(fmt.Sprintf("%d legal moves:\n%s", len(moves), strings.Join(moves, "\n"))), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.history.RecordedCount() == 0 {
		return nil, errors.New("nothing to undo")
	}
	sc.history.Undo()
	return msg(sc.display(sc.currentGame())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.display(sc.currentGame())), nil
}

func (sc *ShellController) box(cmd *shellcmd) (*Response, error) {
	g := sc.currentGame()
	if len(cmd.args) == 0 {
		return msg(g.Box(piece.White).String() + "\n" + g.Box(piece.Black).String()), nil
	}
	c, err := piece.ParseColor(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(g.Box(c).String()), nil
}

func (sc *ShellController) groups(cmd *shellcmd) (*Response, error) {
	lines := lo.Map(sc.currentGame().Groups(), func(g board.Group, _ int) string {
		mark := " "
		if g.IsCompleteWithDistinctShapes() {
			mark = "*"
		}
		return mark + " " + g.String()
	})
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) mode(cmd *shellcmd) (*Response, error) {
	return msg(fmt.Sprintf("History mode: %v (%d moves recorded since %v)",
		sc.history.Mode(), sc.history.RecordedCount(),
		sc.history.StartTime().Format(time.RFC3339))), nil
}
