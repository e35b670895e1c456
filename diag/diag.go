// Package diag defines the structured diagnostics reported by the lexer and
// parser.
package diag

import "fmt"

// Kind is the error taxonomy of the front end.
type Kind int

const (
	// File errors: missing or unreadable input.
	File Kind = iota + 1
	// Lexical errors: malformed literals and unrecognized symbols.
	Lexical
	// Grammar errors: unexpected tokens and missing punctuation.
	Grammar
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file error"
	case Lexical:
		return "lexical error"
	case Grammar:
		return "grammar error"
	default:
		return "error"
	}
}

// Error is a diagnostic pointing at a 1-based line of a source file.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`
}

func (e *Error) Error() string {
	switch {
	case e.File == "" && e.Line > 0:
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
	case e.File == "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Line <= 0:
		return fmt.Sprintf("%s: %s: %s", e.File, e.Kind, e.Message)
	default:
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Kind, e.Message)
	}
}

// Errorf creates a diagnostic of the given kind without a location.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At returns a copy of the diagnostic located at file:line.
func (e *Error) At(file string, line int) *Error {
	c := *e
	c.File = file
	c.Line = line
	return &c
}
