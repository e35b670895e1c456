// Package interpreter walks a parsed Program and checks that it can be
// assembled: every instruction sits in a section, labels and functions are
// declared once per scope, every referenced symbol resolves and every call
// supplies the arguments its function uses.
//
// Nothing is encoded or executed; code generation lives elsewhere.
package interpreter

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/layout"
	"github.com/tmm-dev/tmm/syntax"
)

var (
	ErrNoSection       = errors.New("instruction outside of any section")
	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrUnsupported     = errors.New("unsupported statement")
	ErrArguments       = errors.New("wrong number of arguments")
)

// SectionSummary reports one section the program places code into.
type SectionSummary struct {
	Name         string       `json:"name"`
	Range        layout.Range `json:"range"`
	Instructions int          `json:"instructions"`
}

// Summary is the result of a successful run.
type Summary struct {
	Sections  []SectionSummary `json:"sections"`
	Labels    int              `json:"labels"`
	Functions int              `json:"functions"`
	Calls     int              `json:"calls"`
}

// frame tracks the function body being evaluated. length counts the
// instructions a call to it places, nested calls expanded.
type frame struct {
	name    string
	maxSlot int
	length  int
	refs    []string
}

type Interpreter struct {
	keywords *keyword.Registry
	logger   *log.Logger

	env      *Environment
	summary  *Summary
	sections map[string]int
	section  string
	function *frame
	refs     []string
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger reports section switches and declarations to logger.
func WithLogger(logger *log.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// New returns an interpreter. A nil registry selects keyword.Default().
func New(keywords *keyword.Registry, opts ...Option) *Interpreter {
	if keywords == nil {
		keywords = keyword.Default()
	}
	i := &Interpreter{
		keywords: keywords,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Environment returns the global environment of the last run.
func (i *Interpreter) Environment() *Environment {
	return i.env
}

// Run evaluates every statement of p in order. The first failure stops the
// run.
func (i *Interpreter) Run(p *syntax.Program) (*Summary, error) {
	i.env = NewEnvironment()
	i.summary = &Summary{}
	i.sections = make(map[string]int)
	i.section = ""
	i.function = nil
	i.refs = nil

	for _, stmt := range p.Body() {
		if _, err := i.Evaluate(stmt); err != nil {
			return nil, err
		}
	}

	for _, name := range i.refs {
		if _, ok := i.env.Resolve(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedSymbol, name)
		}
	}
	return i.summary, nil
}

// Evaluate evaluates a single statement.
func (i *Interpreter) Evaluate(stmt syntax.Statement) (Value, error) {
	switch s := stmt.(type) {
	case *syntax.Section:
		return i.evalSection(s)
	case *syntax.Label:
		return i.evalLabel(s)
	case *syntax.Instruction:
		return i.evalInstruction(s)
	case *syntax.Function:
		return i.evalFunction(s)
	case *syntax.FunctionCall:
		return i.evalCall(s)
	case syntax.Expression:
		return nil, fmt.Errorf("%w: %s has no effect", ErrUnsupported, s.Type())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, stmt.Type())
	}
}

func (i *Interpreter) evalSection(s *syntax.Section) (Value, error) {
	name := s.Keyword().Text
	region, ok := layout.ForSection(i.keywords.Lookup(name).ParamOne)
	if !ok {
		return nil, fmt.Errorf("section %s has no memory region", name)
	}

	if s.Offset() != nil {
		v, err := i.eval(s.Offset())
		if err != nil {
			return nil, err
		}
		if n, ok := v.(Number); ok {
			if n.Fractional() != 0 {
				return nil, fmt.Errorf("offset %g of section %s is not a whole number", n.Value, name)
			}
			if n.Value < 0 || n.Value > math.MaxUint32 || !region.Contains(region.Start+n.Integer()) {
				return nil, fmt.Errorf("offset %g is outside section %s %s", n.Value, name, region)
			}
		}
	}

	if _, seen := i.sections[name]; !seen {
		i.sections[name] = len(i.summary.Sections)
		i.summary.Sections = append(i.summary.Sections, SectionSummary{Name: name, Range: region})
	}
	i.section = name
	i.logger.Printf("entered section %s %s (%d addresses)", name, region, region.Size())
	return Void{}, nil
}

func (i *Interpreter) evalLabel(l *syntax.Label) (Value, error) {
	id, ok := l.Symbol().(*syntax.Identifier)
	if !ok {
		return nil, fmt.Errorf("label must be an identifier, found %s", l.Symbol().Type())
	}

	label := Label{Section: i.section}
	if idx, ok := i.sections[i.section]; ok {
		label.Index = i.summary.Sections[idx].Instructions
	}
	if err := i.env.Declare(id.Symbol(), label); err != nil {
		return nil, err
	}
	i.summary.Labels++
	i.logger.Printf("declared label %s in scope %s", id.Symbol(), i.env.Scope())
	return label, nil
}

func (i *Interpreter) evalInstruction(ins *syntax.Instruction) (Value, error) {
	idx, ok := i.sections[i.section]
	if !ok && i.function == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSection, ins.Mnemonic())
	}

	for _, op := range ins.Operands() {
		if _, err := i.eval(op); err != nil {
			return nil, fmt.Errorf("operand of %s: %w", ins.Mnemonic(), err)
		}
	}

	// Function bodies are placed where they are called.
	if i.function != nil {
		i.function.length++
	} else {
		i.summary.Sections[idx].Instructions++
	}
	return Void{}, nil
}

func (i *Interpreter) evalFunction(f *syntax.Function) (Value, error) {
	id, ok := f.Name().(*syntax.Identifier)
	if !ok {
		return nil, fmt.Errorf("function name must be an identifier, found %s", f.Name().Type())
	}
	if i.function != nil {
		return nil, fmt.Errorf("function %q declared inside function %q", id.Symbol(), i.function.name)
	}

	i.function = &frame{name: id.Symbol(), maxSlot: -1}
	i.env.Enter(id.Symbol())
	for _, stmt := range f.Body() {
		if _, err := i.Evaluate(stmt); err != nil {
			i.env.Leave()
			i.function = nil
			return nil, fmt.Errorf("in function %q: %w", id.Symbol(), err)
		}
	}

	// Symbols local to the body are resolved now; the rest must be global.
	for _, name := range i.function.refs {
		if _, ok := i.env.Resolve(name); !ok {
			i.refs = append(i.refs, name)
		}
	}
	fn := Function{Name: id.Symbol(), MaxSlot: i.function.maxSlot, Length: i.function.length}
	i.env.Leave()
	i.function = nil

	if err := i.env.Declare(fn.Name, fn); err != nil {
		return nil, err
	}
	i.summary.Functions++
	i.logger.Printf("declared function %s (%d arguments)", fn.Name, fn.Arity())
	return fn, nil
}

func (i *Interpreter) evalCall(c *syntax.FunctionCall) (Value, error) {
	id, ok := c.Callee().(*syntax.Identifier)
	if !ok {
		return nil, fmt.Errorf("callee must be an identifier, found %s", c.Callee().Type())
	}
	v, ok := i.env.Resolve(id.Symbol())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedSymbol, id.Symbol())
	}
	fn, ok := v.(Function)
	if !ok {
		return nil, fmt.Errorf("%q is a %s, not a function", id.Symbol(), v.Kind())
	}
	idx, inSection := i.sections[i.section]
	if !inSection && i.function == nil {
		return nil, fmt.Errorf("%w: call to %s", ErrNoSection, fn.Name)
	}

	args := c.Args()
	if len(args) < fn.Arity() {
		return nil, fmt.Errorf("%w: %s uses %d, call supplies %d", ErrArguments, fn.Name, fn.Arity(), len(args))
	}
	for _, arg := range args {
		if _, err := i.eval(arg); err != nil {
			return nil, err
		}
	}

	if i.function != nil {
		i.function.length += fn.Length
	} else {
		i.summary.Sections[idx].Instructions += fn.Length
	}
	i.summary.Calls++
	return Void{}, nil
}

// eval checks an operand expression. Only numeric literals produce a value.
func (i *Interpreter) eval(e syntax.Expression) (Value, error) {
	switch x := e.(type) {
	case *syntax.NumericLiteral:
		return Number{Value: x.Value()}, nil
	case *syntax.Identifier:
		if i.function != nil {
			i.function.refs = append(i.function.refs, x.Symbol())
		} else {
			i.refs = append(i.refs, x.Symbol())
		}
		return Void{}, nil
	case *syntax.PlaceholderLiteral:
		if i.function == nil {
			return nil, fmt.Errorf("placeholder @%d used outside of a function", x.Slot())
		}
		i.function.maxSlot = max(i.function.maxSlot, x.Slot())
		return Void{}, nil
	case *syntax.AddressExpression:
		if _, err := i.eval(x.Inner()); err != nil {
			return nil, err
		}
		return Void{}, nil
	case *syntax.UnaryExpression:
		if _, err := i.eval(x.Operand()); err != nil {
			return nil, err
		}
		return Void{}, nil
	case *syntax.BinaryExpression:
		if _, err := i.eval(x.Left()); err != nil {
			return nil, err
		}
		if _, err := i.eval(x.Right()); err != nil {
			return nil, err
		}
		return Void{}, nil
	case *syntax.FunctionCall:
		return nil, fmt.Errorf("%w: call to %s used as an operand", ErrUnsupported, x.Callee().Type())
	default:
		return Void{}, nil
	}
}
