// Package cliapp implements spec.md §4.10's argument parser and driver:
// it recognizes --help/-h, --version/-v, --command/-c, and --config/-C,
// selects an input source (tty or an in-memory command string), and runs
// the read-parse-validate-emit loop.
//
// Flag handling follows vippsas-sqlcode/cli/cmd/root.go's cobra.Command
// construction, adapted from a subcommand tree to a single flag-driven
// root command since this program has no subcommands.
package cliapp

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/better-ecosystem/better-shell/internal/builtins"
	"github.com/better-ecosystem/better-shell/internal/diagnostic"
	"github.com/better-ecosystem/better-shell/internal/driver"
	"github.com/better-ecosystem/better-shell/internal/history"
	"github.com/better-ecosystem/better-shell/internal/pathscan"
	"github.com/better-ecosystem/better-shell/internal/rawmode"
	"github.com/better-ecosystem/better-shell/internal/shellerr"
	"github.com/better-ecosystem/better-shell/internal/shellparser"
	"github.com/better-ecosystem/better-shell/internal/shlog"
	"github.com/better-ecosystem/better-shell/internal/terminal"
	"github.com/better-ecosystem/better-shell/internal/validator"
)

const (
	appName    = "better-shell"
	appVersion = "0.1.0"
)

// ExitError carries a process exit code through the Execute -> main
// boundary, replacing the source's ad hoc exit() calls scattered through
// argument parsing (Design Notes §9's ExitRequested treatment, applied
// here to invocation-time failures too).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

// ExitCode extracts the process exit code from err, if it is an
// *ExitError.
func ExitCode(err error) (int, bool) {
	ee, ok := err.(*ExitError)
	if !ok {
		return 0, false
	}
	return ee.Code, true
}

const eInval = 22 // EINVAL, per spec.md §6's exit codes

// Execute parses argv and runs the application.
func Execute(argv []string) error {
	var commandFlag, configPath string
	var versionFlag bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "An interactive shell front-end",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
				return nil
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), commandFlag, configPath)
		},
	}
	root.SetArgs(argv)
	root.Flags().StringVarP(&commandFlag, "command", "c", "", `run a quoted command string once and exit, e.g. -c "echo hi"`)
	root.Flags().StringVarP(&configPath, "config", "C", "", "path to a config file (reserved)")
	root.Flags().BoolVarP(&versionFlag, "version", "v", false, "print the version and exit")

	return root.Execute()
}

func run(stdout, stderr io.Writer, commandFlag, configPath string) error {
	_ = configPath // reserved, spec.md §4.10

	log := shlog.New()
	if commandFlag != "" {
		log = shlog.Discard()
	}

	pathEnv := os.Getenv("PATH")
	pathMap := pathscan.Scan(pathEnv, log)

	histPath, err := history.DefaultPath()
	if err != nil {
		return &ExitError{Code: eInval}
	}
	hist, err := history.Open(histPath, log)
	if err != nil {
		return &ExitError{Code: eInval}
	}

	asker := diagnostic.TerminalAsker{In: os.Stdin, Out: stdout}
	v := validator.New(builtins.Names(), pathMap, asker)

	if commandFlag != "" {
		text, cmdErr := unquoteCommand(commandFlag)
		if cmdErr != nil {
			fmt.Fprintln(stderr, diagnostic.Render(cmdErr, diagnostic.ShouldUseColor(os.Stderr)))
			return &ExitError{Code: eInval}
		}
		return runOnce(stdout, stderr, v, hist, "argv", text)
	}

	return runInteractive(stdout, stderr, v, hist)
}

// unquoteCommand enforces spec.md §4.10's "parameter must be
// double-quoted" rule for -c/--command.
func unquoteCommand(raw string) (string, *shellerr.Error) {
	if len(raw) < 2 || raw[0] != '"' {
		return "", shellerr.New(shellerr.NoParameter, "--command requires a double-quoted argument")
	}
	if raw[len(raw)-1] != '"' {
		return "", shellerr.New(shellerr.UnclosedQuote, "--command argument is missing its closing quote")
	}
	return raw[1 : len(raw)-1], nil
}

func runOnce(stdout, stderr io.Writer, v *validator.Validator, hist *history.Store, source, text string) error {
	tr := shellparser.Parse(source, text)
	if err := v.VerifySyntax(tr); err != nil {
		fmt.Fprintln(stderr, diagnostic.Render(err, diagnostic.ShouldUseColor(os.Stderr)))
		return &ExitError{Code: eInval}
	}
	hist.PushBack(text)
	data, marshalErr := tr.MarshalGroup(0)
	if marshalErr != nil {
		return marshalErr
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

func runInteractive(stdout, stderr io.Writer, v *validator.Validator, hist *history.Store) error {
	raw, err := rawmode.New(0)
	if err != nil {
		return err
	}
	if err := raw.Raw(); err != nil {
		return err
	}
	defer raw.Reset()

	var sigint, shouldExit atomic.Bool
	installSigintHandler(&sigint)

	h := terminal.New(raw, hist, stdout)
	h.SetPrompt("better-shell> ")

	loop := driver.New(h, os.Stdin, func() { io.WriteString(stdout, "better-shell> ") }, &sigint, &shouldExit)

	for {
		line, readErr := loop.Read()
		if driver.IsInterrupted(readErr) {
			io.WriteString(stdout, "^C\r\n")
			continue
		}
		if readErr != nil {
			fmt.Fprintf(stderr, "\n[EOF]: %s (%s)\n", appName, appVersion)
			return nil
		}

		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		tr := shellparser.Parse("stdin", line)
		if verr := v.VerifySyntax(tr); verr != nil {
			fmt.Fprintln(stderr, diagnostic.Render(verr, diagnostic.ShouldUseColor(os.Stderr)))
			continue
		}

		data, merr := tr.MarshalGroup(0)
		if merr != nil {
			fmt.Fprintln(stderr, merr)
			continue
		}
		fmt.Fprintln(stdout, string(data))
	}
}

// installSigintHandler routes SIGINT into an atomic flag the driver loop
// polls between bytes, per spec.md §5 and Design Notes §9's "route
// SIGINT into an atomic flag only; no back-pointer needed" — replacing
// the source's static terminal-handler pointer used as the signal
// target.
func installSigintHandler(flag *atomic.Bool) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT)
	go func() {
		for range sig {
			flag.Store(true)
		}
	}()
}
