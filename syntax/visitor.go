package syntax

// Visitor has one method per node variant. Adding a variant breaks every
// Visitor implementation at compile time, so consumers cannot silently miss
// one.
type Visitor interface {
	VisitProgram(*Program)
	VisitSection(*Section)
	VisitLabel(*Label)
	VisitInstruction(*Instruction)
	VisitFunction(*Function)
	VisitFunctionCall(*FunctionCall)
	VisitBinaryExpression(*BinaryExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitAddressExpression(*AddressExpression)
	VisitIdentifier(*Identifier)
	VisitStringLiteral(*StringLiteral)
	VisitNumericLiteral(*NumericLiteral)
	VisitRegisterLiteral(*RegisterLiteral)
	VisitConditionLiteral(*ConditionLiteral)
	VisitPlaceholderLiteral(*PlaceholderLiteral)
}

func (p *Program) Accept(v Visitor)            { v.VisitProgram(p) }
func (s *Section) Accept(v Visitor)            { v.VisitSection(s) }
func (l *Label) Accept(v Visitor)              { v.VisitLabel(l) }
func (i *Instruction) Accept(v Visitor)        { v.VisitInstruction(i) }
func (f *Function) Accept(v Visitor)           { v.VisitFunction(f) }
func (c *FunctionCall) Accept(v Visitor)       { v.VisitFunctionCall(c) }
func (b *BinaryExpression) Accept(v Visitor)   { v.VisitBinaryExpression(b) }
func (u *UnaryExpression) Accept(v Visitor)    { v.VisitUnaryExpression(u) }
func (a *AddressExpression) Accept(v Visitor)  { v.VisitAddressExpression(a) }
func (i *Identifier) Accept(v Visitor)         { v.VisitIdentifier(i) }
func (s *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(s) }
func (n *NumericLiteral) Accept(v Visitor)     { v.VisitNumericLiteral(n) }
func (r *RegisterLiteral) Accept(v Visitor)    { v.VisitRegisterLiteral(r) }
func (c *ConditionLiteral) Accept(v Visitor)   { v.VisitConditionLiteral(c) }
func (p *PlaceholderLiteral) Accept(v Visitor) { v.VisitPlaceholderLiteral(p) }

// Children returns the direct child nodes of s in source order. Optional
// children that are absent are omitted.
func Children(s Statement) []Statement {
	switch n := s.(type) {
	case *Program:
		return n.Body()
	case *Function:
		return append([]Statement{n.name}, n.body...)
	case *Section:
		if n.offset == nil {
			return nil
		}
		return []Statement{n.offset}
	case *Label:
		return []Statement{n.symbol}
	case *Instruction:
		return expressions(n.operands)
	case *FunctionCall:
		return append([]Statement{n.callee}, expressions(n.args)...)
	case *BinaryExpression:
		return []Statement{n.left, n.right}
	case *UnaryExpression:
		return []Statement{n.operand}
	case *AddressExpression:
		return []Statement{n.inner}
	default:
		return nil
	}
}

func expressions(exprs []Expression) []Statement {
	out := make([]Statement, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

// Walk traverses the tree rooted at s depth-first in source order, calling
// fn for each node. Returning false from fn skips that node's children.
func Walk(s Statement, fn func(Statement) bool) {
	if s == nil || !fn(s) {
		return
	}
	for _, c := range Children(s) {
		Walk(c, fn)
	}
}
