// Package lexer converts TM assembly sources into a token stream and gives
// the parser front-to-back access to it.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/tmm-dev/tmm/diag"
	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/token"
)

// Lexer holds the token stream of one tokenization session. A session may
// span several files; each path is tokenized at most once.
type Lexer struct {
	keywords *keyword.Registry
	logger   *log.Logger
	tokens   []token.Token
	cursor   int
	lexed    map[string]bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithLogger reports tokenized and skipped files to logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// New returns an empty lexer resolving identifiers against keywords. A nil
// registry selects keyword.Default().
func New(keywords *keyword.Registry, opts ...Option) *Lexer {
	if keywords == nil {
		keywords = keyword.Default()
	}
	l := &Lexer{
		keywords: keywords,
		logger:   log.New(io.Discard, "", 0),
		lexed:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TokenizeFile appends the tokens of the file at path. A path that was
// already tokenized in this session is skipped without being read again.
func (l *Lexer) TokenizeFile(path string) error {
	if path == "" {
		return diag.Errorf(diag.File, "no input file provided")
	}

	fpath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving absolute filepath: %w", err)
	}
	if l.lexed[fpath] {
		l.logger.Printf("skipping %s: already tokenized", fpath)
		return nil
	}

	if _, err := os.Stat(fpath); errors.Is(err, fs.ErrNotExist) {
		return &diag.Error{Kind: diag.File, Message: "file not found", File: fpath}
	}
	l.lexed[fpath] = true

	file, err := os.Open(fpath)
	if err != nil {
		return &diag.Error{Kind: diag.File, Message: fmt.Sprintf("file could not be opened: %v", err), File: fpath}
	}
	defer func() {
		_ = file.Close()
	}()

	before := len(l.tokens)
	if err := l.tokenize(fpath, file); err != nil {
		return fmt.Errorf("in source file %s: %w", fpath, err)
	}
	l.logger.Printf("tokenized %s (%d tokens)", fpath, len(l.tokens)-before)
	return nil
}

// TokenizeStream appends the tokens read from r. Tokens carry no file name.
func (l *Lexer) TokenizeStream(r io.Reader) error {
	return l.tokenize("", r)
}

func (l *Lexer) tokenize(file string, r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return &diag.Error{Kind: diag.File, Message: fmt.Sprintf("error reading source: %v", err), File: file}
	}

	s := newScanner(l.keywords, file, src)
	if err := s.scan(); err != nil {
		return err
	}

	// Only one EndOfFile may terminate the stream. The previous source's
	// marker becomes a line break so statements never span sources.
	if n := len(l.tokens); n > 0 && l.tokens[n-1].Kind == token.EndOfFile {
		l.tokens[n-1].Kind = token.NewLine
	}
	l.tokens = append(l.tokens, s.tokens...)
	return nil
}

// Tokens returns a copy of every token tokenized so far, consumed or not.
func (l *Lexer) Tokens() []token.Token {
	return slices.Clone(l.tokens)
}

// HasMoreTokens reports whether a token other than the final EndOfFile
// remains to be consumed.
func (l *Lexer) HasMoreTokens() bool {
	return l.cursor < len(l.tokens) && l.tokens[l.cursor].Kind != token.EndOfFile
}

// TokenAt returns the token index positions ahead of the front of the
// stream. An index outside the stream is a programming error and panics.
func (l *Lexer) TokenAt(index int) token.Token {
	i := l.cursor + index
	if index < 0 || i >= len(l.tokens) {
		panic(fmt.Sprintf("lexer: token index %d is out of range", index))
	}
	return l.tokens[i]
}

// DiscardToken removes and returns the front token. The final EndOfFile
// token is returned but never removed.
func (l *Lexer) DiscardToken() token.Token {
	tok := l.TokenAt(0)
	l.advance()
	return tok
}

// DiscardTokenIf discards the front token if it is of the given kind.
func (l *Lexer) DiscardTokenIf(kind token.Kind) bool {
	if l.cursor >= len(l.tokens) || l.tokens[l.cursor].Kind != kind {
		return false
	}
	l.advance()
	return true
}

// DiscardNewLine discards the front token if it terminates a line. It
// reports true at the end of the stream as well.
func (l *Lexer) DiscardNewLine() bool {
	if l.cursor >= len(l.tokens) || !l.tokens[l.cursor].IsTerminator() {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) advance() {
	if l.cursor < len(l.tokens)-1 {
		l.cursor++
	}
}
