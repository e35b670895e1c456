package renderer

import (
	"encoding/json"
	"io"

	"github.com/tmm-dev/tmm/interpreter"
	"github.com/tmm-dev/tmm/syntax"
	"github.com/tmm-dev/tmm/token"
)

// JSONRenderer renders output in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) RenderTokens(tokens []token.Token, output io.Writer) error {
	if tokens == nil {
		tokens = []token.Token{}
	}
	return json.NewEncoder(output).Encode(tokens)
}

func (r *JSONRenderer) RenderProgram(program *syntax.Program, output io.Writer) error {
	return json.NewEncoder(output).Encode(toNode(program))
}

func (r *JSONRenderer) RenderSummary(summary *interpreter.Summary, output io.Writer) error {
	return json.NewEncoder(output).Encode(summary)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
