package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tmm-dev/tmm/interpreter"
	"github.com/tmm-dev/tmm/syntax"
	"github.com/tmm-dev/tmm/token"
)

// TextRenderer writes human readable listings, one item per line.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// RenderTokens lists every token with its location.
func (r *TextRenderer) RenderTokens(tokens []token.Token, output io.Writer) error {
	var report strings.Builder
	for _, tok := range tokens {
		file := tok.File
		if file == "" {
			file = "<stdin>"
		}
		report.WriteString(fmt.Sprintf("%s:%d: %s\n", file, tok.Line, tok))
	}
	_, err := io.WriteString(output, report.String())
	return err
}

// RenderProgram prints the tree, indenting each level by two spaces.
func (r *TextRenderer) RenderProgram(program *syntax.Program, output io.Writer) error {
	var report strings.Builder
	writeNode(&report, toNode(program), 0)
	_, err := io.WriteString(output, report.String())
	return err
}

func writeNode(b *strings.Builder, n *node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Type.String())
	if n.Operator != "" {
		b.WriteString(" " + n.Operator)
	}
	if n.Name != "" {
		b.WriteString(" " + n.Name)
	}
	if n.Opcode != nil {
		b.WriteString(fmt.Sprintf(" (opcode %d)", *n.Opcode))
	}
	if n.Number != nil {
		b.WriteString(fmt.Sprintf(" %g", *n.Number))
	}
	if n.String != nil {
		b.WriteString(fmt.Sprintf(" %q", *n.String))
	}
	if n.Slot != nil {
		b.WriteString(fmt.Sprintf(" @%d", *n.Slot))
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		writeNode(b, c, depth+1)
	}
}

// RenderSummary prints the sections in use followed by declaration counts.
func (r *TextRenderer) RenderSummary(summary *interpreter.Summary, output io.Writer) error {
	var report strings.Builder
	report.WriteString("Sections:\n")
	for _, s := range summary.Sections {
		report.WriteString(fmt.Sprintf("  %-8s %s  %d instructions\n", s.Name, s.Range, s.Instructions))
	}
	report.WriteString(fmt.Sprintf("Labels: %d\n", summary.Labels))
	report.WriteString(fmt.Sprintf("Functions: %d\n", summary.Functions))
	report.WriteString(fmt.Sprintf("Calls: %d\n", summary.Calls))
	_, err := io.WriteString(output, report.String())
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
