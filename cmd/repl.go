package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/tmm-dev/tmm/diag"
	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/lexer"
	"github.com/tmm-dev/tmm/parser"
	"github.com/tmm-dev/tmm/renderer"
	"github.com/urfave/cli/v2"
)

const (
	historyFile = ".tmm_history"
	promptMain  = "tmm> "
	promptCont  = "...> "
)

const replHelp = `Enter statements to see their syntax tree. A function body may span lines.
  :tokens         toggle listing tokens instead of the tree
  :format FORMAT  switch output format (text, json)
  :help           show this help
  :quit           leave the shell
`

func CreateReplCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "repl",
		Usage:       "Starts an interactive shell that parses each statement",
		Description: "Reads statements interactively and prints the syntax tree of each one",
		Action:      action,
		Flags: []cli.Flag{
			FormatFlag,
			TokensFlag,
		},
	}
}

var ReplCommand = CreateReplCommand(StartRepl)

func StartRepl(ctx *cli.Context) error {
	s, err := newSession(ctx.String(FormatFlag.Name), ctx.Bool(TokensFlag.Name), ctx.App.Writer)
	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeMnemonic)

	// History is best-effort.
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, ok := readStatement(ln)
		if !ok {
			fmt.Fprintln(s.out)
			break
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if s.command(trimmed) {
				break
			}
			continue
		}

		if err := s.eval(src); err != nil {
			fmt.Fprintln(s.out, err)
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// readStatement prompts until the input no longer ends inside an open
// construct. It returns false when the user closes the input.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if strings.HasPrefix(strings.TrimSpace(b.String()), ":") || !needsMore(b.String()) {
			return b.String(), true
		}
	}
}

// needsMore reports whether src stops before the statement it starts is
// complete, such as a function body without its closing brace.
func needsMore(src string) bool {
	l := lexer.New(nil)
	err := l.TokenizeStream(strings.NewReader(src + "\n"))
	if err == nil {
		_, err = parser.New(l, nil).ParseProgram()
	}
	var d *diag.Error
	return errors.As(err, &d) && strings.Contains(d.Message, "end-of-file")
}

// session is the state of one interactive shell.
type session struct {
	renderer renderer.Renderer
	tokens   bool
	out      io.Writer
}

func newSession(format string, tokens bool, out io.Writer) (*session, error) {
	r, err := renderer.New(format)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &session{renderer: r, tokens: tokens, out: out}, nil
}

// eval tokenizes and parses src on its own, then renders the result.
func (s *session) eval(src string) error {
	l := lexer.New(nil)
	if err := l.TokenizeStream(strings.NewReader(src + "\n")); err != nil {
		return err
	}
	if s.tokens {
		return s.renderer.RenderTokens(l.Tokens(), s.out)
	}
	program, err := parser.New(l, nil).ParseProgram()
	if err != nil {
		return err
	}
	return s.renderer.RenderProgram(program, s.out)
}

// command runs a shell command and reports whether the shell should exit.
func (s *session) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":tokens":
		s.tokens = !s.tokens
		fmt.Fprintf(s.out, "token listing %s\n", map[bool]string{true: "on", false: "off"}[s.tokens])
	case ":format":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: :format text|json")
			return false
		}
		r, err := renderer.New(fields[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.renderer = r
	default:
		fmt.Fprintf(s.out, "unknown command %s, try :help\n", fields[0])
	}
	return false
}

// completeMnemonic completes the word under the cursor against every
// mnemonic, in upper case.
func completeMnemonic(line string) []string {
	start := strings.LastIndexAny(line, " \t,[(") + 1
	prefix := strings.ToUpper(line[start:])
	if prefix == "" {
		return nil
	}

	reg := keyword.Default()
	var matches []string
	for _, c := range []keyword.Category{keyword.Language, keyword.Section, keyword.Register, keyword.Condition, keyword.Instruction} {
		for _, name := range reg.Mnemonics(c) {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, line[:start]+name)
			}
		}
	}
	sort.Strings(matches)
	return matches
}
