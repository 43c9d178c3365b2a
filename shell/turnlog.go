package shell

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TurnLogEntry is one YAML document in the turn log.
type TurnLogEntry struct {
	Seq    int    `yaml:"seq"`
	Time   string `yaml:"time"`
	Mode   string `yaml:"mode"`
	Player string `yaml:"player"`
	Move   string `yaml:"move"`
	Key    string `yaml:"key"`
	Winner string `yaml:"winner,omitempty"`
}

// TurnLogger appends placements to a multi-document YAML file.
type TurnLogger struct {
	path string
}

func NewTurnLogger(path string) *TurnLogger {
	return &TurnLogger{path: path}
}

func (t *TurnLogger) Append(e TurnLogEntry) error {
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.WriteString(f, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}

// ReadTurnLog decodes every entry of a turn log file.
func ReadTurnLog(path string) ([]TurnLogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	var entries []TurnLogEntry
	for {
		var e TurnLogEntry
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
}
