package renderer

import (
	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/syntax"
)

// node is the serializable form of a syntax tree node.
type node struct {
	Type     syntax.Type `json:"type"`
	Name     string      `json:"name,omitempty"`
	Operator string      `json:"operator,omitempty"`
	Opcode   *int32      `json:"opcode,omitempty"`
	ID       *int32      `json:"id,omitempty"`
	Number   *float64    `json:"number,omitempty"`
	String   *string     `json:"string,omitempty"`
	Slot     *int        `json:"slot,omitempty"`
	Children []*node     `json:"children,omitempty"`
}

// nodeBuilder fills in the fields of one node.
type nodeBuilder struct {
	n *node
}

func (b nodeBuilder) VisitProgram(*syntax.Program) {}

func (b nodeBuilder) VisitSection(s *syntax.Section) { b.n.Name = s.Keyword().Text }

func (b nodeBuilder) VisitLabel(*syntax.Label) {}

func (b nodeBuilder) VisitInstruction(i *syntax.Instruction) {
	op := i.Opcode()
	b.n.Name = keyword.InstructionName(op)
	if b.n.Name == "" {
		b.n.Name = i.Mnemonic()
	}
	b.n.Opcode = &op
}

func (b nodeBuilder) VisitFunction(*syntax.Function) {}

func (b nodeBuilder) VisitFunctionCall(*syntax.FunctionCall) {}

func (b nodeBuilder) VisitBinaryExpression(e *syntax.BinaryExpression) {
	b.n.Operator = e.Operator().Kind.String()
}

func (b nodeBuilder) VisitUnaryExpression(e *syntax.UnaryExpression) {
	b.n.Operator = e.Operator().Kind.String()
}

func (b nodeBuilder) VisitAddressExpression(*syntax.AddressExpression) {}

func (b nodeBuilder) VisitIdentifier(i *syntax.Identifier) { b.n.Name = i.Symbol() }

func (b nodeBuilder) VisitStringLiteral(s *syntax.StringLiteral) {
	v := s.Value()
	b.n.String = &v
}

func (b nodeBuilder) VisitNumericLiteral(l *syntax.NumericLiteral) {
	v := l.Value()
	b.n.Number = &v
}

func (b nodeBuilder) VisitRegisterLiteral(r *syntax.RegisterLiteral) {
	id := r.Register()
	b.n.Name = r.Name()
	b.n.ID = &id
}

func (b nodeBuilder) VisitConditionLiteral(c *syntax.ConditionLiteral) {
	id := c.Condition()
	b.n.Name = c.Name()
	b.n.ID = &id
}

func (b nodeBuilder) VisitPlaceholderLiteral(p *syntax.PlaceholderLiteral) {
	slot := p.Slot()
	b.n.Slot = &slot
}

// toNode converts the tree rooted at s.
func toNode(s syntax.Statement) *node {
	n := &node{Type: s.Type()}
	s.Accept(nodeBuilder{n})
	for _, c := range syntax.Children(s) {
		n.Children = append(n.Children, toNode(c))
	}
	return n
}
