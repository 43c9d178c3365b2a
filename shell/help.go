package shell

import (
	"embed"
	"fmt"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage() (*Response, error) {
	dat, err := helptext.ReadFile("helptext/usage.txt")
	if err != nil {
		return nil, err
	}
	return msg(string(dat)), nil
}

func usageTopic(topic string) (*Response, error) {
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return nil, fmt.Errorf("there is no help text for the topic %s", topic)
	}
	return msg(string(dat)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
