// Package cmd defines all the commands for the cli
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tmm-dev/tmm/common"
	"github.com/tmm-dev/tmm/lexer"
	"github.com/tmm-dev/tmm/parser"
	"github.com/tmm-dev/tmm/profile"
	"github.com/tmm-dev/tmm/renderer"
	"github.com/tmm-dev/tmm/syntax"
	"github.com/urfave/cli/v2"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the project profile. Default: nearest tmm.yaml when no files are given",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output",
		Usage:    "output file path. Default: stdout",
		Required: false,
	}
	TokensFlag = &cli.BoolFlag{
		Name:     "tokens",
		Usage:    "list the tokens of the sources instead of parsing them",
		Required: false,
		Value:    false,
	}
	VerboseFlag = &cli.BoolFlag{
		Name:     "verbose",
		Usage:    "log every source file as it is tokenized",
		Required: false,
		Value:    false,
	}
)

func CreateParseCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "parse",
		Usage:       "Parses assembly sources and prints the syntax tree",
		Description: "Tokenizes every source file into one stream, parses it and prints the syntax tree, or only the tokens with --tokens",
		ArgsUsage:   "[FILE...]",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			OutputPathFlag,
			TokensFlag,
			VerboseFlag,
		},
	}
}

var ParseCommand = CreateParseCommand(ParseSources)

func ParseSources(ctx *cli.Context) error {
	opts, err := loadOptions(ctx)
	if err != nil {
		return err
	}

	l, err := tokenize(opts)
	if err != nil {
		return err
	}

	outputPath := ctx.Path(OutputPathFlag.Name)
	if ctx.Bool(TokensFlag.Name) {
		return writeOutput(outputPath, opts.format, func(r renderer.Renderer, out io.Writer) error {
			return r.RenderTokens(l.Tokens(), out)
		})
	}

	program, err := parse(l)
	if err != nil {
		return err
	}
	return writeOutput(outputPath, opts.format, func(r renderer.Renderer, out io.Writer) error {
		return r.RenderProgram(program, out)
	})
}

// options are the settings resolved from flags, arguments and the profile.
type options struct {
	sources []string
	format  string
	logger  *log.Logger
}

// loadOptions merges the command line with the project profile. Sources
// given as arguments replace the profile's, and flags override its settings.
func loadOptions(ctx *cli.Context) (*options, error) {
	profilePath := ctx.Path(ProfileFlag.Name)
	if profilePath == "" && ctx.NArg() == 0 {
		found, err := common.FindProjectRoot(".", profile.FileName)
		if err != nil {
			return nil, fmt.Errorf("no input files and no project profile: %w", err)
		}
		profilePath = found
	}

	opts := &options{format: "text"}
	verbose := ctx.Bool(VerboseFlag.Name)
	if profilePath != "" {
		prof, err := profile.LoadProfile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("error loading profile: %w", err)
		}
		opts.sources = prof.SourcePaths()
		opts.format = prof.Format
		verbose = verbose || prof.Verbose
	}

	if ctx.NArg() > 0 {
		opts.sources = ctx.Args().Slice()
	}
	if len(opts.sources) == 0 {
		return nil, errors.New("no input files")
	}
	if ctx.IsSet(FormatFlag.Name) {
		opts.format = ctx.String(FormatFlag.Name)
	}
	if verbose {
		opts.logger = log.New(os.Stderr, "tmm: ", 0)
	}
	return opts, nil
}

// tokenize reads every source into one lexer session.
func tokenize(opts *options) (*lexer.Lexer, error) {
	var lexOpts []lexer.Option
	if opts.logger != nil {
		lexOpts = append(lexOpts, lexer.WithLogger(opts.logger))
	}
	l := lexer.New(nil, lexOpts...)
	for _, src := range opts.sources {
		if err := l.TokenizeFile(src); err != nil {
			return nil, fmt.Errorf("error tokenizing the sources: %w", err)
		}
	}
	return l, nil
}

func parse(l *lexer.Lexer) (*syntax.Program, error) {
	program, err := parser.New(l, nil).ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("error parsing the sources: %w", err)
	}
	return program, nil
}

// writeOutput opens the output, stdout when outputPath is empty, and hands
// it to render together with the renderer for format.
func writeOutput(outputPath, format string, render func(renderer.Renderer, io.Writer) error) error {
	rendererInstance, err := renderer.New(format)
	if err != nil {
		return err
	}

	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	return render(rendererInstance, output)
}
