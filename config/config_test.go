package config

import (
	"os"
	"testing"

	"github.com/matryer/is"
)

func TestDefaultConfig(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetString(ConfigHistoryMode), "replay")
	is.Equal(c.GetString(ConfigTurnLogPath), "")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	chdir(t, t.TempDir())
	c := &Config{}
	err := c.Load([]string{"--history-mode", "snapshot", "--debug", "show"})
	is.NoErr(err)
	is.Equal(c.GetString(ConfigHistoryMode), "snapshot")
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.Args, []string{"show"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	chdir(t, t.TempDir())
	t.Setenv("QUANTIK_TURN_LOG_PATH", "/tmp/turns.yaml")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString(ConfigTurnLogPath), "/tmp/turns.yaml")
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.True(c.Load([]string{"--no-such-flag"}) != nil)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
