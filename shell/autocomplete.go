package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/quantikgo/quantik/piece"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var shapeNames = lo.Map(piece.Shapes[:], func(s piece.Shape, _ int) string {
	return s.String()
})

var commandMetadata = map[string]CommandMetadata{
	"new":  {Options: []string{"-mode"}},
	"box":  {Args: []string{"white", "black"}},
	"help": {Args: []string{"new", "play", "script"}},
}

var commandNames = []string{
	"new", "play", "legal", "undo", "show", "box", "groups", "mode",
	"script", "help", "exit",
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}
		// number of positional fields already complete, not counting the
		// command itself
		numDone := len(fields) - 1
		if !endsWithSpace {
			numDone--
		}

		switch {
		case lastCompleteField == "-mode":
			completions = []string{"replay", "snapshot"}
		case cmdName == "play" && numDone == 2:
			completions = shapeNames
		default:
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
