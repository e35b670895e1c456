// Package syntax defines the syntax tree produced by the parser.
//
// Statement and Expression are sealed: only the node types declared here
// implement them. Nodes are fully initialized by their constructors and
// expose read-only accessors; the bodies of Program and Function only grow.
package syntax

import (
	"fmt"
	"slices"

	"github.com/tmm-dev/tmm/token"
)

// Type tags every node variant.
type Type int

const (
	TypeProgram Type = iota
	TypeSection
	TypeLabel
	TypeInstruction
	TypeFunction
	TypeFunctionCall
	TypeBinaryExpression
	TypeUnaryExpression
	TypeAddressExpression
	TypeIdentifier
	TypeStringLiteral
	TypeNumericLiteral
	TypeRegisterLiteral
	TypeConditionLiteral
	TypePlaceholderLiteral
)

var typeNames = [...]string{
	TypeProgram:            "Program",
	TypeSection:            "SectionStatement",
	TypeLabel:              "LabelStatement",
	TypeInstruction:        "InstructionStatement",
	TypeFunction:           "FunctionStatement",
	TypeFunctionCall:       "FunctionCall",
	TypeBinaryExpression:   "BinaryExpression",
	TypeUnaryExpression:    "UnaryExpression",
	TypeAddressExpression:  "AddressExpression",
	TypeIdentifier:         "Identifier",
	TypeStringLiteral:      "StringLiteral",
	TypeNumericLiteral:     "NumericLiteral",
	TypeRegisterLiteral:    "RegisterLiteral",
	TypeConditionLiteral:   "ConditionLiteral",
	TypePlaceholderLiteral: "PlaceholderLiteral",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// MarshalText renders the type by name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a type name written by MarshalText.
func (t *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown syntax type %q", text)
}

// Statement is any node that may appear in a program or function body.
type Statement interface {
	Type() Type
	Accept(v Visitor)
	statementNode()
}

// Expression is a statement that yields a value.
type Expression interface {
	Statement
	expressionNode()
}

type statement struct{}

func (statement) statementNode() {}

type expression struct{ statement }

func (expression) expressionNode() {}

// Program is the root of the tree.
type Program struct {
	statement
	body []Statement
}

func NewProgram() *Program { return &Program{} }

func (*Program) Type() Type { return TypeProgram }

// Push appends a top-level statement.
func (p *Program) Push(s Statement) { p.body = append(p.body, s) }

// Body returns the top-level statements in source order.
func (p *Program) Body() []Statement { return slices.Clone(p.body) }

// Len returns the number of top-level statements.
func (p *Program) Len() int { return len(p.body) }

// Section selects the memory section subsequent statements go into.
type Section struct {
	statement
	keyword token.Token
	offset  Expression
}

// NewSection creates a section statement. offset may be nil.
func NewSection(keyword token.Token, offset Expression) *Section {
	return &Section{keyword: keyword, offset: offset}
}

func (*Section) Type() Type { return TypeSection }

// Keyword returns the section keyword token, e.g. PROGRAM or INT3.
func (s *Section) Keyword() token.Token { return s.keyword }

// Offset returns the offset expression, or nil if none was given.
func (s *Section) Offset() Expression { return s.offset }

// Label names a jump or reference target.
type Label struct {
	statement
	symbol Expression
}

func NewLabel(symbol Expression) *Label { return &Label{symbol: symbol} }

func (*Label) Type() Type { return TypeLabel }

func (l *Label) Symbol() Expression { return l.symbol }

// Instruction is an opcode with up to two operands.
type Instruction struct {
	statement
	opcode   int32
	mnemonic string
	operands []Expression
}

func NewInstruction(opcode int32, mnemonic string, operands ...Expression) *Instruction {
	return &Instruction{opcode: opcode, mnemonic: mnemonic, operands: slices.Clone(operands)}
}

func (*Instruction) Type() Type { return TypeInstruction }

func (i *Instruction) Opcode() int32 { return i.opcode }

// Mnemonic returns the upper-cased mnemonic as written in source.
func (i *Instruction) Mnemonic() string { return i.mnemonic }

func (i *Instruction) Operands() []Expression { return slices.Clone(i.operands) }

// Function declares a named function (macro) scope.
type Function struct {
	statement
	name Expression
	body []Statement
}

func NewFunction(name Expression, body []Statement) *Function {
	return &Function{name: name, body: slices.Clone(body)}
}

func (*Function) Type() Type { return TypeFunction }

func (f *Function) Name() Expression { return f.name }


func (f *Function) Body() []Statement { return slices.Clone(f.body) }

// FunctionCall invokes a callee with an ordered argument list.
type FunctionCall struct {
	expression
	callee Expression
	args   []Expression
}

func NewFunctionCall(callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{callee: callee, args: slices.Clone(args)}
}

func (*FunctionCall) Type() Type { return TypeFunctionCall }

func (c *FunctionCall) Callee() Expression { return c.callee }

func (c *FunctionCall) Args() []Expression { return slices.Clone(c.args) }

type BinaryExpression struct {
	expression
	left     Expression
	right    Expression
	operator token.Token
}

func NewBinaryExpression(left, right Expression, operator token.Token) *BinaryExpression {
	return &BinaryExpression{left: left, right: right, operator: operator}
}

func (*BinaryExpression) Type() Type { return TypeBinaryExpression }

func (b *BinaryExpression) Left() Expression { return b.left }

func (b *BinaryExpression) Right() Expression { return b.right }

func (b *BinaryExpression) Operator() token.Token { return b.operator }

type UnaryExpression struct {
	expression
	operand  Expression
	operator token.Token
}

func NewUnaryExpression(operand Expression, operator token.Token) *UnaryExpression {
	return &UnaryExpression{operand: operand, operator: operator}
}

func (*UnaryExpression) Type() Type { return TypeUnaryExpression }

func (u *UnaryExpression) Operand() Expression { return u.operand }

func (u *UnaryExpression) Operator() token.Token { return u.operator }

// AddressExpression dereferences the memory address its inner expression
// evaluates to: [inner].
type AddressExpression struct {
	expression
	inner Expression
}

func NewAddressExpression(inner Expression) *AddressExpression {
	return &AddressExpression{inner: inner}
}

func (*AddressExpression) Type() Type { return TypeAddressExpression }

func (a *AddressExpression) Inner() Expression { return a.inner }

type Identifier struct {
	expression
	symbol string
}

func NewIdentifier(symbol string) *Identifier { return &Identifier{symbol: symbol} }

func (*Identifier) Type() Type { return TypeIdentifier }

func (i *Identifier) Symbol() string { return i.symbol }

type StringLiteral struct {
	expression
	value string
}

func NewStringLiteral(value string) *StringLiteral { return &StringLiteral{value: value} }

func (*StringLiteral) Type() Type { return TypeStringLiteral }

func (s *StringLiteral) Value() string { return s.value }

// NumericLiteral holds integer and fractional literals alike.
type NumericLiteral struct {
	expression
	value float64
}

func NewNumericLiteral(value float64) *NumericLiteral { return &NumericLiteral{value: value} }

func (*NumericLiteral) Type() Type { return TypeNumericLiteral }

func (n *NumericLiteral) Value() float64 { return n.value }

type RegisterLiteral struct {
	expression
	register int32
	name     string
}

func NewRegisterLiteral(register int32, name string) *RegisterLiteral {
	return &RegisterLiteral{register: register, name: name}
}

func (*RegisterLiteral) Type() Type { return TypeRegisterLiteral }

func (r *RegisterLiteral) Register() int32 { return r.register }

func (r *RegisterLiteral) Name() string { return r.name }

type ConditionLiteral struct {
	expression
	condition int32
	name      string
}

func NewConditionLiteral(condition int32, name string) *ConditionLiteral {
	return &ConditionLiteral{condition: condition, name: name}
}

func (*ConditionLiteral) Type() Type { return TypeConditionLiteral }

func (c *ConditionLiteral) Condition() int32 { return c.condition }

func (c *ConditionLiteral) Name() string { return c.name }

// PlaceholderLiteral is a macro argument slot, written @N.
type PlaceholderLiteral struct {
	expression
	slot int
}

func NewPlaceholderLiteral(slot int) *PlaceholderLiteral { return &PlaceholderLiteral{slot: slot} }

func (*PlaceholderLiteral) Type() Type { return TypePlaceholderLiteral }

func (p *PlaceholderLiteral) Slot() int { return p.slot }

// StatementTypes lists the types of the program's top-level statements.
func StatementTypes(p *Program) []Type {
	types := make([]Type, len(p.body))
	for i, s := range p.body {
		types[i] = s.Type()
	}
	return types
}
