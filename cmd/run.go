package cmd

import (
	"fmt"
	"io"

	"github.com/tmm-dev/tmm/interpreter"
	"github.com/tmm-dev/tmm/renderer"
	"github.com/urfave/cli/v2"
)

func CreateRunCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Usage:       "Parses assembly sources and checks them with the interpreter",
		Description: "Parses the sources into one program, checks sections, symbols and calls, and prints a summary",
		ArgsUsage:   "[FILE...]",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			OutputPathFlag,
			VerboseFlag,
		},
	}
}

var RunCommand = CreateRunCommand(RunProgram)

func RunProgram(ctx *cli.Context) error {
	opts, err := loadOptions(ctx)
	if err != nil {
		return err
	}

	l, err := tokenize(opts)
	if err != nil {
		return err
	}
	program, err := parse(l)
	if err != nil {
		return err
	}

	var runOpts []interpreter.Option
	if opts.logger != nil {
		runOpts = append(runOpts, interpreter.WithLogger(opts.logger))
	}
	summary, err := interpreter.New(nil, runOpts...).Run(program)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return writeOutput(ctx.Path(OutputPathFlag.Name), opts.format, func(r renderer.Renderer, out io.Writer) error {
		return r.RenderSummary(summary, out)
	})
}
