// Released under an MIT license. See LICENSE.

/*
Ruschm is a small Scheme interpreter. It evaluates expressions from
scripts, from the command line, or interactively:

	ruschm fact.scm
	ruschm -c '(display (+ 1 2))'
	echo '(newline)' | ruschm
	ruschm

With no script or command and a terminal on stdin, expressions are read
at a prompt with line editing and history.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/ruschm/ruschm/internal/engine"
	"github.com/ruschm/ruschm/internal/system/options"
	"github.com/ruschm/ruschm/internal/system/process"
	"github.com/ruschm/ruschm/internal/ui"
	"github.com/xyproto/vt"
)

func main() {
	options.Parse()

	e, err := interpreter(os.Stdout)
	if err == nil {
		err = run(e, os.Stdin)
	}

	if err != nil {
		report(err)
		os.Exit(process.Status(err))
	}
}

func interpreter(w io.Writer) (*engine.T, error) {
	opts := []engine.Option{engine.WithOutput(w)}

	if n := options.Steps(); n > 0 {
		opts = append(opts, engine.WithStepLimit(n))
	}

	if options.Debug() {
		opts = append(opts, engine.WithTrace(os.Stderr))
	}

	if options.Single() {
		return engine.New[float32](opts...)
	}

	return engine.New[float64](opts...)
}

func report(err error) {
	msg := "ruschm: " + err.Error()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = vt.LightRed.Get(msg)
	}

	fmt.Fprintln(os.Stderr, msg)
}

func run(e *engine.T, stdin io.Reader) error {
	command := options.Command()
	scripts := options.Scripts()

	if command == "" && len(scripts) == 0 && options.Interactive() {
		return ui.Run(e, os.Stdout, report)
	}

	ctx, stop := process.Interruptible(context.Background())
	defer stop()

	if command != "" {
		_, err := e.EvaluateString(ctx, "-c", command)

		return err
	}

	if len(scripts) == 0 {
		return source(ctx, e, "-", stdin)
	}

	for _, path := range scripts {
		if err := script(ctx, e, path); err != nil {
			return err
		}
	}

	return nil
}

func script(ctx context.Context, e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return source(ctx, e, path, f)
}

func source(ctx context.Context, e *engine.T, label string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	_, err = e.EvaluateString(ctx, label, string(b))

	return err
}
