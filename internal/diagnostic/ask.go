package diagnostic

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalAsker implements validator.Asker by prompting on out and
// reading a single line from in, per spec.md §4.9's ask() helper:
// bracketed options with the default upper-cased, empty input returns
// the default, invalid input reprompts.
type TerminalAsker struct {
	In  io.Reader
	Out io.Writer
}

// AskYesNo prompts prompt with "[Y/n]" or "[y/N]" depending on
// defaultYes, and reprompts on anything but y/n/empty.
func (a TerminalAsker) AskYesNo(prompt string, defaultYes bool) bool {
	options := "y/N"
	if defaultYes {
		options = "Y/n"
	}
	reader := bufio.NewReader(a.In)
	for {
		fmt.Fprintf(a.Out, "%s [%s] ", prompt, options)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return defaultYes
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "":
			return defaultYes
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			continue
		}
	}
}
