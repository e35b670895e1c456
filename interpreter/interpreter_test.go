package interpreter

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmm-dev/tmm/layout"
	"github.com/tmm-dev/tmm/lexer"
	"github.com/tmm-dev/tmm/parser"
	"github.com/tmm-dev/tmm/syntax"
)

func program(t *testing.T, src string) *syntax.Program {
	t.Helper()
	l := lexer.New(nil)
	require.NoError(t, l.TokenizeStream(strings.NewReader(src)))
	p, err := parser.New(l, nil).ParseProgram()
	require.NoError(t, err)
	return p
}

func run(t *testing.T, src string) (*Summary, error) {
	t.Helper()
	return New(nil).Run(program(t, src))
}

func TestRun(t *testing.T) {
	src := `
SECTION PROGRAM
.start:
	LD A, [counter]
	CALL N, double
	double(A)
	JMP N, start

SECTION RAM, 0x10
.counter:

FUNCTION double {
	ADD @0, @0
	RET N
}
`
	var logs bytes.Buffer
	in := New(nil, WithLogger(log.New(&logs, "", 0)))

	summary, err := in.Run(program(t, src))
	require.Error(t, err, "calls need the function declared first")
	assert.ErrorIs(t, err, ErrUndefinedSymbol)
	assert.Nil(t, summary)

	// Move the declaration ahead of its first call.
	src = strings.Replace(src, "\tdouble(A)\n", "", 1) + "SECTION PROGRAM\ndouble(B)\n"
	summary, err = in.Run(program(t, src))
	require.NoError(t, err)

	require.Len(t, summary.Sections, 2)
	assert.Equal(t, SectionSummary{Name: "PROGRAM", Range: layout.Program, Instructions: 5}, summary.Sections[0])
	assert.Equal(t, SectionSummary{Name: "RAM", Range: layout.RAM}, summary.Sections[1])
	assert.Equal(t, 2, summary.Labels)
	assert.Equal(t, 1, summary.Functions)
	assert.Equal(t, 1, summary.Calls)

	v, ok := in.Environment().Resolve("double")
	require.True(t, ok)
	assert.Equal(t, Function{Name: "double", MaxSlot: 0, Length: 2}, v)

	v, ok = in.Environment().Resolve("counter")
	require.True(t, ok)
	assert.Equal(t, Label{Section: "RAM"}, v)

	v, ok = in.Environment().Resolve("start")
	require.True(t, ok)
	assert.Equal(t, Label{Section: "PROGRAM", Index: 0}, v)

	assert.Contains(t, logs.String(), "declared function double (1 arguments)")
}

func TestNoSection(t *testing.T) {
	_, err := run(t, "NOP\n")
	assert.ErrorIs(t, err, ErrNoSection)

	// Function bodies are not placed until called.
	_, err = run(t, "FUNCTION f {\n  NOP\n}\n")
	assert.NoError(t, err)

	// A call places the body, so it needs a section too.
	_, err = run(t, "FUNCTION f {\n  NOP\n}\nf()\n")
	require.ErrorIs(t, err, ErrNoSection)
	assert.Contains(t, err.Error(), "call to f")

	// Inside a function the call is placed with the caller's body.
	_, err = run(t, "FUNCTION f { NOP }\nFUNCTION g { f() }\n")
	assert.NoError(t, err)
}

func TestInstructionCount(t *testing.T) {
	src := `
FUNCTION f {
.x:
.y:
	NOP
}
FUNCTION three {
	NOP
	NOP
	NOP
}
FUNCTION g {
	three()
	f()
	HALT
}
SECTION PROGRAM
f()
g()
.end:
`
	in := New(nil)
	summary, err := in.Run(program(t, src))
	require.NoError(t, err)
	assert.Equal(t, 1+5, summary.Sections[0].Instructions, "labels place nothing and nested calls expand")

	v, ok := in.Environment().Resolve("g")
	require.True(t, ok)
	assert.Equal(t, 5, v.(Function).Length)

	v, ok = in.Environment().Resolve("end")
	require.True(t, ok)
	assert.Equal(t, Label{Section: "PROGRAM", Index: 6}, v)
}

func TestDuplicateDeclarations(t *testing.T) {
	_, err := run(t, "SECTION PROGRAM\n.a:\n.a:\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a" is already declared as a label`)

	// Labels inside a function shadow global ones.
	_, err = run(t, "SECTION PROGRAM\n.a: NOP\nFUNCTION f {\n.a: JMP N, a\n}\n")
	assert.NoError(t, err)

	_, err = run(t, "FUNCTION f { NOP }\nFUNCTION f { HALT }\n")
	assert.Error(t, err)
}

func TestUndefinedSymbol(t *testing.T) {
	_, err := run(t, "SECTION PROGRAM\nJMP N, nowhere\n")
	assert.ErrorIs(t, err, ErrUndefinedSymbol)
	assert.Contains(t, err.Error(), `"nowhere"`)

	// A function may refer to globals declared after it.
	_, err = run(t, "FUNCTION f { JMP N, later }\nSECTION PROGRAM\n.later: NOP\n")
	assert.NoError(t, err)

	_, err = run(t, "FUNCTION f { JMP N, missing }\n")
	assert.ErrorIs(t, err, ErrUndefinedSymbol)
}

func TestArguments(t *testing.T) {
	_, err := run(t, "FUNCTION f { LD @1, @0 }\nSECTION PROGRAM\nf(A)\n")
	assert.ErrorIs(t, err, ErrArguments)

	summary, err := run(t, "FUNCTION f { LD @1, @0 }\nSECTION PROGRAM\nf(A, 1)\n")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sections[0].Instructions)

	_, err = run(t, "SECTION PROGRAM\nPUSH @0\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside of a function")

	_, err = run(t, "SECTION PROGRAM\n.l:\nl()\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a label, not a function")
}

func TestSectionOffset(t *testing.T) {
	_, err := run(t, "SECTION RST2, 0xFF\n")
	assert.NoError(t, err)

	_, err = run(t, "SECTION RST2, 0x100\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside section RST2")

	_, err = run(t, "SECTION RAM, 99999999999\n")
	assert.ErrorContains(t, err, "outside section RAM")

	_, err = run(t, "SECTION RAM, 1.5\n")
	assert.ErrorContains(t, err, "not a whole number")
}

func TestUnsupported(t *testing.T) {
	_, err := run(t, "1 + 2\n")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = run(t, "FUNCTION f { NOP }\nSECTION PROGRAM\nPUSH f()\n")
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	assert.Equal(t, "global", env.Scope())
	require.NoError(t, env.Declare("x", Number{Value: 1}))

	env.Enter("inner")
	assert.Equal(t, "inner", env.Scope())
	require.NoError(t, env.Declare("x", Number{Value: 2}))
	v, ok := env.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, Number{Value: 2}, v)

	env.Leave()
	v, _ = env.Resolve("x")
	assert.Equal(t, Number{Value: 1}, v)

	env.Leave()
	assert.Equal(t, "global", env.Scope(), "the global scope is never left")

	_, ok = env.Resolve("y")
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	n := Number{Value: 3.5}
	assert.Equal(t, uint32(3), n.Integer())
	assert.Equal(t, uint32(0x7FFFFFFF), n.Fractional())
	assert.Equal(t, "3.5", n.String())
	assert.Equal(t, KindNumber, n.Kind())
	assert.Equal(t, "label", KindLabel.String())
}
