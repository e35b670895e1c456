package lexer

import (
	"strings"

	"github.com/tmm-dev/tmm/diag"
	"github.com/tmm-dev/tmm/keyword"
	"github.com/tmm-dev/tmm/token"
)

// scanner tokenizes the bytes of a single source.
type scanner struct {
	keywords *keyword.Registry
	src      []byte
	file     string
	pos      int
	line     int
	tokens   []token.Token
}

func newScanner(keywords *keyword.Registry, file string, src []byte) *scanner {
	return &scanner{
		keywords: keywords,
		src:      src,
		file:     file,
		line:     1,
	}
}

// scan runs the scanner to the end of the source. The token list always ends
// with an EndOfFile token when no error is returned.
func (s *scanner) scan() error {
	for {
		if s.pos >= len(s.src) {
			s.emit(token.EndOfFile, "")
			return nil
		}

		ch := s.src[s.pos]
		switch {
		case ch == '\n':
			s.pos++
			s.emit(token.NewLine, "")
			s.line++
			continue
		case ch == ';':
			s.skipComment()
			continue
		case isSpace(ch):
			s.pos++
			continue
		}

		var err error
		switch {
		case ch == '_' || isLetter(ch):
			s.scanIdentifier()
		case ch == '\'':
			err = s.scanChar()
		case ch == '"':
			err = s.scanString()
		case ch == '@' || isDigit(ch):
			err = s.scanNumber()
		default:
			err = s.scanSymbol()
		}
		if err != nil {
			return err
		}
	}
}

func (s *scanner) emit(kind token.Kind, text string) {
	s.emitAt(kind, text, s.line)
}

func (s *scanner) emitAt(kind token.Kind, text string, line int) {
	s.tokens = append(s.tokens, token.Token{Kind: kind, Text: text, File: s.file, Line: line})
}

func (s *scanner) fail(format string, args ...any) error {
	return diag.Errorf(diag.Lexical, format, args...).At(s.file, s.line)
}

// skipComment discards everything up to, but not including, the next newline.
func (s *scanner) skipComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// match consumes the next byte if it equals c.
func (s *scanner) match(c byte) bool {
	if next, ok := s.peek(); ok && next == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) scanIdentifier() {
	start := s.pos
	for s.pos < len(s.src) && (s.src[s.pos] == '_' || isLetter(s.src[s.pos]) || isDigit(s.src[s.pos])) {
		s.pos++
	}

	text := string(s.src[start:s.pos])
	upper := strings.ToUpper(text)
	if s.keywords.Lookup(upper).Category != keyword.None {
		s.emit(token.Keyword, upper)
		return
	}
	s.emit(token.Identifier, text)
}

func (s *scanner) scanChar() error {
	s.pos++ // opening quote

	c, ok := s.peek()
	switch {
	case !ok:
		return s.fail("unexpected end-of-file found while parsing character literal")
	case c == '\'':
		return s.fail("empty character literal")
	case c == '\n':
		return s.fail("unterminated character literal")
	}
	s.pos++
	if c == '\\' {
		esc, ok := s.peek()
		if !ok {
			return s.fail("unexpected end-of-file found while parsing character literal")
		}
		s.pos++
		c = unescape(esc)
	}

	if !s.match('\'') {
		return s.fail("more than one character found in character literal")
	}
	s.emit(token.Char, string(c))
	return nil
}

func (s *scanner) scanString() error {
	startLine := s.line
	s.pos++ // opening quote

	var b strings.Builder
	for {
		c, ok := s.peek()
		if !ok {
			return s.fail("unexpected end-of-file found while parsing string")
		}
		s.pos++

		switch c {
		case '"':
			s.emitAt(token.String, b.String(), startLine)
			return nil
		case '\\':
			esc, ok := s.peek()
			if !ok {
				return s.fail("unexpected end-of-file found while parsing string")
			}
			s.pos++
			b.WriteByte(unescape(esc))
		case '\n':
			s.line++
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}

func (s *scanner) scanNumber() error {
	if s.src[s.pos] == '0' && s.pos+1 < len(s.src) {
		switch s.src[s.pos+1] {
		case 'x', 'X':
			s.pos += 2
			return s.scanDigits(token.Hexadecimal, isHexDigit, "hexadecimal", "0x")
		case 'b', 'B':
			s.pos += 2
			return s.scanDigits(token.Binary, isBinaryDigit, "binary", "0b")
		case 'o', 'O':
			s.pos += 2
			return s.scanDigits(token.Octal, isOctalDigit, "octal", "0o")
		}
	}

	if s.src[s.pos] == '@' {
		s.pos++
		start := s.pos
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
		if s.pos == start {
			return s.fail("expected slot index after '@'")
		}
		if s.pos+1 < len(s.src) && s.src[s.pos] == '.' && isDigit(s.src[s.pos+1]) {
			return s.fail("placeholder slot index cannot have a fractional part")
		}
		s.emit(token.Placeholder, string(s.src[start:s.pos]))
		return nil
	}

	start := s.pos
	decimal := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isDigit(c) {
			s.pos++
			continue
		}
		// A second '.' ends the literal, and ".." is the concat operator.
		if c == '.' && !decimal && !(s.pos+1 < len(s.src) && s.src[s.pos+1] == '.') {
			decimal = true
			s.pos++
			continue
		}
		break
	}
	s.emit(token.Number, string(s.src[start:s.pos]))
	return nil
}

func (s *scanner) scanDigits(kind token.Kind, valid func(byte) bool, name, prefix string) error {
	start := s.pos
	for s.pos < len(s.src) && valid(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return s.fail("expected %s string after '%s' literal", name, prefix)
	}
	s.emit(kind, string(s.src[start:s.pos]))
	return nil
}

func (s *scanner) scanSymbol() error {
	c := s.src[s.pos]
	s.pos++

	var kind token.Kind
	switch c {
	case '=':
		kind = token.AssignEquals
		if s.match('=') {
			kind = token.CompareEquals
			if s.match('=') {
				kind = token.CompareStrictEquals
			}
		}
	case '!':
		kind = token.LogicalNot
		if s.match('=') {
			kind = token.CompareNotEquals
			if s.match('=') {
				kind = token.CompareStrictNotEquals
			}
		}
	case '+':
		switch {
		case s.match('+'):
			kind = token.Increment
		case s.match('='):
			kind = token.AssignPlus
		default:
			kind = token.Plus
		}
	case '-':
		switch {
		case s.match('-'):
			kind = token.Decrement
		case s.match('='):
			kind = token.AssignMinus
		default:
			kind = token.Minus
		}
	case '*':
		switch {
		case s.match('='):
			kind = token.AssignTimes
		case s.match('*'):
			kind = token.Exponent
			if s.match('=') {
				kind = token.AssignExponent
			}
		default:
			kind = token.Times
		}
	case '/':
		kind = token.Divide
		if s.match('=') {
			kind = token.AssignDivide
		}
	case '%':
		kind = token.Modulo
		if s.match('=') {
			kind = token.AssignModulo
		}
	case '&':
		switch {
		case s.match('='):
			kind = token.AssignBitwiseAnd
		case s.match('&'):
			kind = token.LogicalAnd
		default:
			kind = token.BitwiseAnd
		}
	case '|':
		switch {
		case s.match('='):
			kind = token.AssignBitwiseOr
		case s.match('|'):
			kind = token.LogicalOr
		default:
			kind = token.BitwiseOr
		}
	case '^':
		kind = token.BitwiseXor
		if s.match('=') {
			kind = token.AssignBitwiseXor
		}
	case '~':
		kind = token.BitwiseNot
	case '>':
		switch {
		case s.match('='):
			kind = token.CompareGreaterEquals
		case s.match('>'):
			kind = token.BitwiseRightShift
			if s.match('=') {
				kind = token.AssignBitwiseRightShift
			}
		default:
			kind = token.CompareGreater
		}
	case '<':
		switch {
		case s.match('='):
			kind = token.CompareLessEquals
		case s.match('<'):
			kind = token.BitwiseLeftShift
			if s.match('=') {
				kind = token.AssignBitwiseLeftShift
			}
		default:
			kind = token.CompareLess
		}
	case '(':
		kind = token.OpenParen
	case ')':
		kind = token.CloseParen
	case '[':
		kind = token.OpenBracket
	case ']':
		kind = token.CloseBracket
	case '{':
		kind = token.OpenBrace
	case '}':
		kind = token.CloseBrace
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case '.':
		kind = token.Period
		if s.match('.') {
			kind = token.Concat
		}
	default:
		return s.fail("unexpected character %q", c)
	}

	s.emit(kind, "")
	return nil
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return c
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}
