// Package renderer renders token streams, syntax trees and run summaries in
// different formats.
package renderer

import (
	"fmt"
	"io"

	"github.com/tmm-dev/tmm/interpreter"
	"github.com/tmm-dev/tmm/syntax"
	"github.com/tmm-dev/tmm/token"
)

// Renderer defines the interface for rendering front end output in different formats.
type Renderer interface {
	// RenderTokens writes a token listing.
	RenderTokens(tokens []token.Token, output io.Writer) error

	// RenderProgram writes a syntax tree.
	RenderProgram(program *syntax.Program, output io.Writer) error

	// RenderSummary writes the result of an interpreter run.
	RenderSummary(summary *interpreter.Summary, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
