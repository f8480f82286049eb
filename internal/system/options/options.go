// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	scripts     []string
	single      bool
	steps       int64
	usage       = `ruschm

Usage:
  ruschm [-d] [--single] [--steps=N] SCRIPT...
  ruschm [-d] [--single] [--steps=N] -c COMMAND
  ruschm [-d] [--single] [--steps=N] [-i]
  ruschm -h
  ruschm -v

Arguments:
  SCRIPT     Path to a Scheme source file. Files are evaluated in order.

Options:
  -c, --command=COMMAND  Evaluate the specified expressions.
  -d, --debug            Trace the evaluator's state to stderr.
  -i, --interactive      Invert interactive mode.
  -s, --single           Use single precision reals.
  --steps=N              Limit each expression to N evaluation steps [default: 0].
  -h, --help             Display this help.
  -v, --version          Print ruschm version.

If ruschm's stdin is a TTY, and ruschm was invoked with no script or
command, expressions are read interactively. Otherwise, expressions are
read from stdin without prompting.
`
	version = "ruschm 0.1.0"
)

// Command returns the text passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if the evaluator should be traced.
func Debug() bool {
	return debug
}

// Interactive returns true if expressions should be read with a prompt.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after displaying help or the version.
func Parse() {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	load(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Scripts returns the paths of the scripts to evaluate.
func Scripts() []string {
	return scripts
}

// Single returns true if reals should have single precision.
func Single() bool {
	return single
}

// Steps returns the step limit for each expression. Zero means no limit.
func Steps() int64 {
	return steps
}

func load(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	single, _ = opts.Bool("--single")

	scripts, _ = opts["SCRIPT"].([]string)

	s, _ := opts.String("--steps")
	steps, _ = strconv.ParseInt(s, 10, 64)

	interactive = command == "" && len(scripts) == 0 && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}
