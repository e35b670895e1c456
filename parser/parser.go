// Package parser builds a syntax tree from the token stream of a lexer.
//
// The grammar performs no error recovery. The first failure aborts the
// parse and is reported at the first token of the statement it occurred in.
package parser

import (
	"errors"

	"github.com/tmm-dev/tmm/common/lifo"
	"github.com/tmm-dev/tmm/diag"
	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/lexer"
	"github.com/tmm-dev/tmm/syntax"
	"github.com/tmm-dev/tmm/token"
)

// Parser drains one lexer into one Program. It is single use.
type Parser struct {
	lexer    *lexer.Lexer
	keywords *keyword.Registry
	// scopes holds the name of every function declaration being parsed.
	scopes lifo.Stack[string]
}

// New returns a parser over l. A nil registry selects keyword.Default().
func New(l *lexer.Lexer, keywords *keyword.Registry) *Parser {
	if keywords == nil {
		keywords = keyword.Default()
	}
	return &Parser{lexer: l, keywords: keywords}
}

// ParseProgram parses statements until the end of the stream.
func (p *Parser) ParseProgram() (*syntax.Program, error) {
	program := syntax.NewProgram()
	for p.lexer.HasMoreTokens() {
		if p.lexer.DiscardNewLine() {
			continue
		}

		lead := p.lexer.TokenAt(0)
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, locate(err, lead)
		}
		program.Push(stmt)
	}
	return program, nil
}

// locate moves a grammar error to the lead token of its statement.
func locate(err error, lead token.Token) error {
	var d *diag.Error
	if errors.As(err, &d) && d.Kind == diag.Grammar {
		return d.At(lead.File, lead.Line)
	}
	return err
}

// ParseStatement parses one statement starting at the front of the stream.
func (p *Parser) ParseStatement() (syntax.Statement, error) {
	tok := p.lexer.TokenAt(0)

	switch tok.Kind {
	case token.Keyword:
		kw := p.keywords.Lookup(tok.Text)
		switch kw.Category {
		case keyword.Language:
			switch kw.ParamOne {
			case keyword.LangSection:
				return p.parseSection()
			case keyword.LangFunction:
				return p.parseFunction()
			default:
				return nil, p.fail(tok, "'%s' statements are not implemented", tok.Text)
			}
		case keyword.Instruction:
			return p.parseInstruction()
		}
	case token.Period:
		return p.parseLabel()
	}

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.endOfStatement() {
		return nil, p.unexpected(p.lexer.TokenAt(0))
	}
	return expr, nil
}

func (p *Parser) parseSection() (syntax.Statement, error) {
	p.lexer.DiscardToken() // SECTION

	tok := p.lexer.DiscardToken()
	if tok.Kind != token.Keyword || p.keywords.Lookup(tok.Text).Category != keyword.Section {
		return nil, p.fail(tok, "expected section name after 'SECTION', found %s", tok)
	}

	if p.endOfStatement() {
		return syntax.NewSection(tok, nil), nil
	}
	if !p.lexer.DiscardTokenIf(token.Comma) {
		return nil, p.fail(p.lexer.TokenAt(0), "expected ',' before section offset")
	}

	offset, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.endOfStatement() {
		return nil, p.fail(p.lexer.TokenAt(0), "expected end of line after section offset")
	}
	return syntax.NewSection(tok, offset), nil
}

func (p *Parser) parseLabel() (syntax.Statement, error) {
	p.lexer.DiscardToken() // .

	symbol, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.lexer.DiscardTokenIf(token.Colon) {
		return nil, p.fail(p.lexer.TokenAt(0), "expected ':' after label")
	}
	return syntax.NewLabel(symbol), nil
}

func (p *Parser) parseInstruction() (syntax.Statement, error) {
	tok := p.lexer.DiscardToken()
	kw := p.keywords.Lookup(tok.Text)

	var operands []syntax.Expression
	switch kw.Arity() {
	case 0:
		p.endOfStatement()
		return syntax.NewInstruction(kw.ParamOne, tok.Text), nil
	case 1:
		operand, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	default:
		first, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if !p.lexer.DiscardTokenIf(token.Comma) {
			return nil, p.fail(p.lexer.TokenAt(0), "expected ',' between arguments")
		}
		second, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, first, second)
	}

	if !p.endOfStatement() {
		return nil, p.fail(p.lexer.TokenAt(0), "expected end of line after instruction")
	}
	return syntax.NewInstruction(kw.ParamOne, tok.Text, operands...), nil
}

func (p *Parser) parseFunction() (syntax.Statement, error) {
	tok := p.lexer.DiscardToken() // FUNCTION or MACRO
	if outer, ok := p.scopes.Peek(); ok {
		return nil, p.fail(tok, "function declarations cannot be nested, found one inside %q", outer)
	}

	name, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	p.lexer.DiscardNewLine()
	if !p.lexer.DiscardTokenIf(token.OpenBrace) {
		next := p.lexer.TokenAt(0)
		if next.Kind == token.EndOfFile {
			return nil, p.unexpected(next)
		}
		return nil, p.fail(next, "expected '{' to open function body")
	}

	p.scopes.Push(scopeName(name))
	defer p.scopes.Pop()

	var body []syntax.Statement
	for {
		if p.lexer.DiscardTokenIf(token.CloseBrace) {
			break
		}
		if p.lexer.TokenAt(0).Kind == token.EndOfFile {
			return nil, p.fail(p.lexer.TokenAt(0), "unexpected end-of-file in function body")
		}
		if p.lexer.DiscardNewLine() {
			continue
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return syntax.NewFunction(name, body), nil
}

func scopeName(name syntax.Expression) string {
	if id, ok := name.(*syntax.Identifier); ok {
		return id.Symbol()
	}
	return name.Type().String()
}

// endOfStatement consumes a line terminator. Inside a function body a
// closing brace also ends the statement; it is left for the body loop.
func (p *Parser) endOfStatement() bool {
	if p.lexer.DiscardNewLine() {
		return true
	}
	return !p.scopes.IsEmpty() && p.lexer.TokenAt(0).Kind == token.CloseBrace
}

func (p *Parser) fail(tok token.Token, format string, args ...any) error {
	return diag.Errorf(diag.Grammar, format, args...).At(tok.File, tok.Line)
}

func (p *Parser) unexpected(tok token.Token) error {
	if tok.Kind == token.EndOfFile {
		return p.fail(tok, "unexpected end-of-file during parsing")
	}
	if tok.Text == "" {
		return p.fail(tok, "unexpected '%s' token", tok.Kind)
	}
	return p.fail(tok, "unexpected '%s' token = '%s'", tok.Kind, tok.Text)
}
