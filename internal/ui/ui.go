// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the interpreter.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/ruschm/ruschm/internal/common/interface/cell"
	"github.com/ruschm/ruschm/internal/common/interface/literal"
	"github.com/ruschm/ruschm/internal/common/type/void"
	"github.com/ruschm/ruschm/internal/reader"
	"github.com/ruschm/ruschm/internal/system/history"
	"github.com/ruschm/ruschm/internal/system/process"
)

const (
	prompt       = "> "
	continuation = "  "
)

// Evaluator is the interface for things that want to evaluate data.
type Evaluator interface {
	Eval(ctx context.Context, c cell.I) (cell.I, error)
	Reader(label string) *reader.T
}

// Run reads data interactively and evaluates each as it is completed.
// Values are written to w. Errors are passed to report.
func Run(e Evaluator, w io.Writer, report func(error)) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	_ = history.Load(cli.ReadHistory)

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(true)

	r := e.Reader("repl")
	p := prompt

	for {
		if err = uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(p)

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			p = prompt

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		r.Scan(line + "\n")

		p = evaluate(e, r, w, report)
	}
}

// evaluate evaluates every complete datum read by r and returns the
// prompt for the next line.
func evaluate(e Evaluator, r *reader.T, w io.Writer, report func(error)) string {
	for {
		c, err := r.Read()

		switch {
		case errors.Is(err, io.EOF):
			return prompt
		case errors.Is(err, reader.ErrIncomplete):
			return continuation
		case err != nil:
			report(err)

			return prompt
		}

		ctx, stop := process.Interruptible(context.Background())
		v, err := e.Eval(ctx, c)

		stop()

		if err != nil {
			report(err)

			continue
		}

		if v != void.Void {
			fmt.Fprintln(w, literal.String(v))
		}
	}
}
