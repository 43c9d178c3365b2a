package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/quantikgo/quantik/config"
	"github.com/quantikgo/quantik/history"
	"github.com/quantikgo/quantik/zobrist"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit requested")
)

type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	// mu serializes command execution. Handlers assume it is held.
	mu      sync.Mutex
	out     io.Writer
	history history.Mechanism
	zobrist *zobrist.Zobrist
	turnLog *TurnLogger
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController creates a controller with an empty game in the
// configured history mode.
func NewShellController(cfg *config.Config, execPath string) (*ShellController, error) {
	mode, err := history.ParseMode(cfg.GetString(config.ConfigHistoryMode))
	if err != nil {
		return nil, err
	}
	h, err := history.New(mode, time.Now())
	if err != nil {
		return nil, err
	}
	z := &zobrist.Zobrist{}
	z.Initialize()

	sc := &ShellController{
		config:   cfg,
		execPath: execPath,
		out:      os.Stdout,
		history:  h,
		zobrist:  z,
	}
	if p := cfg.GetString(config.ConfigTurnLogPath); p != "" {
		sc.turnLog = NewTurnLogger(p)
	}
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its positional arguments
// and its -option value pairs.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 && !isNumber(fields[idx]) {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	for i, r := range s {
		if i == 0 && r == '-' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("cmd", cmd.cmd).Strs("args", cmd.args).Msg("shell-command")
	switch cmd.cmd {
	case "exit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "play":
		return sc.play(cmd)
	case "legal":
		return sc.legal(cmd)
	case "undo":
		return sc.undo(cmd)
	case "show":
		return sc.show(cmd)
	case "box":
		return sc.box(cmd)
	case "groups":
		return sc.groups(cmd)
	case "mode":
		return sc.mode(cmd)
	case "script":
		return sc.script(cmd)
	}
	log.Debug().Msgf("you said: %q", line)
	return nil, fmt.Errorf("unrecognized command: %s", cmd.cmd)
}

// execute runs one command line while holding the controller's lock.
func (sc *ShellController) execute(line string) (*Response, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.standardModeSwitch(line)
}

// Execute runs one command line and prints the outcome. An exit command
// sends an interrupt on sig.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.execute(line)
	if errors.Is(err, errExit) {
		sig <- syscall.SIGINT
		return
	}
	if err != nil {
		log.Err(err).Str("line", line).Msg("command-failed")
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

// Loop reads commands from the terminal until exit, EOF or an interrupt
// on an empty line.
func (sc *ShellController) Loop(sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[36mquantik>\033[0m ",
		HistoryFile:     "/tmp/quantik_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Err(err).Msg("readline-init-failed")
		sig <- syscall.SIGINT
		return
	}
	sc.l = l
	sc.out = l.Stdout()
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		sc.Execute(sig, line)
	}
	log.Debug().Msg("exiting-readline-loop")
}
