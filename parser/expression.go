package parser

import (
	"strconv"

	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/syntax"
	"github.com/tmm-dev/tmm/token"
)

// ParseExpression parses a full expression. From loosest to tightest the
// levels are: call, logical, comparison, bitwise, additive, multiplicative,
// unary and primary. Binary levels are left-associative.
func (p *Parser) ParseExpression() (syntax.Expression, error) {
	return p.parseCall()
}

func (p *Parser) parseCall() (syntax.Expression, error) {
	callee, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	if !p.lexer.DiscardTokenIf(token.OpenParen) {
		return callee, nil
	}

	var args []syntax.Expression
	if p.lexer.DiscardTokenIf(token.CloseParen) {
		return syntax.NewFunctionCall(callee, args), nil
	}
	for {
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.lexer.DiscardTokenIf(token.CloseParen) {
			return syntax.NewFunctionCall(callee, args), nil
		}
		if !p.lexer.DiscardTokenIf(token.Comma) {
			return nil, p.fail(p.lexer.TokenAt(0), "expected ',' or ')' in argument list")
		}
	}
}

// binary parses one left-associative level: operands come from next and
// operators are the tokens matched by is.
func (p *Parser) binary(next func() (syntax.Expression, error), is func(token.Token) bool) (syntax.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for is(p.lexer.TokenAt(0)) {
		operator := p.lexer.DiscardToken()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = syntax.NewBinaryExpression(left, right, operator)
	}
	return left, nil
}

func (p *Parser) parseLogical() (syntax.Expression, error) {
	return p.binary(p.parseComparison, token.Token.IsLogicalOperator)
}

func (p *Parser) parseComparison() (syntax.Expression, error) {
	return p.binary(p.parseBitwise, token.Token.IsComparisonOperator)
}

func (p *Parser) parseBitwise() (syntax.Expression, error) {
	return p.binary(p.parseAdditive, token.Token.IsBitwiseOperator)
}

func (p *Parser) parseAdditive() (syntax.Expression, error) {
	return p.binary(p.parseMultiplicative, token.Token.IsAdditiveOperator)
}

func (p *Parser) parseMultiplicative() (syntax.Expression, error) {
	return p.binary(p.parseUnary, token.Token.IsMultiplicativeOperator)
}

// parseUnary accepts at most one prefix operator.
func (p *Parser) parseUnary() (syntax.Expression, error) {
	if !p.lexer.TokenAt(0).IsUnaryOperator() {
		return p.parsePrimary()
	}
	operator := p.lexer.DiscardToken()
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return syntax.NewUnaryExpression(operand, operator), nil
}

func (p *Parser) parsePrimary() (syntax.Expression, error) {
	tok := p.lexer.TokenAt(0)
	if tok.Kind == token.EndOfFile {
		return nil, p.unexpected(tok)
	}
	p.lexer.DiscardToken()

	switch tok.Kind {
	case token.Keyword:
		kw := p.keywords.Lookup(tok.Text)
		switch kw.Category {
		case keyword.Register:
			return syntax.NewRegisterLiteral(kw.ParamOne, tok.Text), nil
		case keyword.Condition:
			return syntax.NewConditionLiteral(kw.ParamOne, tok.Text), nil
		}
	case token.Identifier:
		return syntax.NewIdentifier(tok.Text), nil
	case token.Char:
		return syntax.NewNumericLiteral(float64(tok.Text[0])), nil
	case token.String:
		return syntax.NewStringLiteral(tok.Text), nil
	case token.Number:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.fail(tok, "invalid number literal '%s'", tok.Text)
		}
		return syntax.NewNumericLiteral(v), nil
	case token.Binary:
		return p.parseRadix(tok, 2)
	case token.Octal:
		return p.parseRadix(tok, 8)
	case token.Hexadecimal:
		return p.parseRadix(tok, 16)
	case token.Placeholder:
		slot, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, p.fail(tok, "invalid placeholder slot '@%s'", tok.Text)
		}
		return syntax.NewPlaceholderLiteral(slot), nil
	case token.OpenBracket:
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if !p.lexer.DiscardTokenIf(token.CloseBracket) {
			return nil, p.fail(p.lexer.TokenAt(0), "expected ']' to close address expression")
		}
		return syntax.NewAddressExpression(inner), nil
	case token.OpenParen:
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if !p.lexer.DiscardTokenIf(token.CloseParen) {
			return nil, p.fail(p.lexer.TokenAt(0), "expected ')' to close grouping")
		}
		return inner, nil
	}

	return nil, p.unexpected(tok)
}

func (p *Parser) parseRadix(tok token.Token, base int) (syntax.Expression, error) {
	v, err := strconv.ParseUint(tok.Text, base, 64)
	if err != nil {
		return nil, p.fail(tok, "invalid base-%d literal '%s'", base, tok.Text)
	}
	return syntax.NewNumericLiteral(float64(v)), nil
}
