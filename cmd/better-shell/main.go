// Command better-shell is the interactive front-end built from
// spec.md: a raw-mode line editor, history, a recursive-descent
// tokenizer, a validator, and a diagnostic renderer.
//
// This replaces kylelemons-goat's goat.go demo (a flag-driven choice
// between a line-editing loop and a frame-border demo built on
// termios.TermSettings and term.NewTTY) with the full read-parse-
// validate-emit loop spec.md describes, built on the same raw-mode
// acquire/defer-release shape goat.go used.
package main

import (
	"fmt"
	"os"

	"github.com/better-ecosystem/better-shell/internal/cliapp"
)

func main() {
	if err := cliapp.Execute(os.Args[1:]); err != nil {
		if code, ok := cliapp.ExitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
