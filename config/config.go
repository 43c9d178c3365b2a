package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigHistoryMode = "history-mode"
	ConfigTurnLogPath = "turn-log-path"
	ConfigCPUProfile  = "cpu-profile"
	ConfigMemProfile  = "mem-profile"
)

// Config wraps a viper instance. Values come, in increasing priority, from
// the defaults, an optional quantik.yaml in the working directory, the
// QUANTIK_ environment and the command line.
type Config struct {
	*viper.Viper
	// Args are the command-line arguments left over after flag parsing.
	Args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigHistoryMode, "replay")
	v.SetDefault(ConfigTurnLogPath, "")
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigMemProfile, "")
}

// Load parses args and reads the config file and environment.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("quantik", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigHistoryMode, "replay", "how moves are kept for undo: replay or snapshot")
	fs.String(ConfigTurnLogPath, "", "append every placement to this YAML file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigMemProfile, "", "write a memory profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("quantik")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("quantik")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// DefaultConfig returns a config holding only the defaults. It does not
// look at flags, files or the environment.
func DefaultConfig() Config {
	c := Config{Viper: viper.New()}
	setDefaults(c.Viper)
	return c
}
