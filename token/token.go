// Package token defines the lexical units produced by the lexer.
package token

import "fmt"

// Kind identifies the category of a token.
type Kind int

const (
	Unknown Kind = iota

	Keyword

	// Literals
	Identifier
	Char
	String
	Number
	Binary
	Octal
	Hexadecimal
	Placeholder

	// Arithmetic operators
	Plus
	Minus
	Times
	Exponent
	Divide
	Modulo
	Increment
	Decrement
	Concat

	// Bitwise operators
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot
	BitwiseLeftShift
	BitwiseRightShift

	// Assignment operators
	AssignEquals
	AssignPlus
	AssignMinus
	AssignTimes
	AssignExponent
	AssignDivide
	AssignModulo
	AssignBitwiseAnd
	AssignBitwiseOr
	AssignBitwiseXor
	AssignBitwiseLeftShift
	AssignBitwiseRightShift

	// Comparison operators
	CompareEquals
	CompareStrictEquals
	CompareNotEquals
	CompareStrictNotEquals
	CompareGreater
	CompareLess
	CompareGreaterEquals
	CompareLessEquals

	// Logical operators
	LogicalAnd
	LogicalOr
	LogicalNot

	// Grouping
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace

	// Punctuation
	Comma
	Colon
	Period

	NewLine
	EndOfFile
)

var kindNames = map[Kind]string{
	Keyword:                 "Keyword",
	Identifier:              "Identifier",
	Char:                    "Char",
	String:                  "String",
	Number:                  "Number",
	Binary:                  "Binary",
	Octal:                   "Octal",
	Hexadecimal:             "Hexadecimal",
	Placeholder:             "Placeholder",
	Plus:                    "Plus",
	Minus:                   "Minus",
	Times:                   "Times",
	Exponent:                "Exponent",
	Divide:                  "Divide",
	Modulo:                  "Modulo",
	Increment:               "Increment",
	Decrement:               "Decrement",
	Concat:                  "Concat",
	BitwiseAnd:              "Bitwise And",
	BitwiseOr:               "Bitwise Or",
	BitwiseXor:              "Bitwise Xor",
	BitwiseNot:              "Bitwise Not",
	BitwiseLeftShift:        "Bitwise Left Shift",
	BitwiseRightShift:       "Bitwise Right Shift",
	AssignEquals:            "Assignment",
	AssignPlus:              "Plus Assignment",
	AssignMinus:             "Minus Assignment",
	AssignTimes:             "Times Assignment",
	AssignExponent:          "Exponent Assignment",
	AssignDivide:            "Divide Assignment",
	AssignModulo:            "Modulo Assignment",
	AssignBitwiseAnd:        "Bitwise And Assignment",
	AssignBitwiseOr:         "Bitwise Or Assignment",
	AssignBitwiseXor:        "Bitwise Xor Assignment",
	AssignBitwiseLeftShift:  "Bitwise Left Shift Assignment",
	AssignBitwiseRightShift: "Bitwise Right Shift Assignment",
	CompareEquals:           "Equals",
	CompareStrictEquals:     "Strictly Equals",
	CompareNotEquals:        "Not Equals",
	CompareStrictNotEquals:  "Not Strictly Equals",
	CompareGreater:          "Greater Than",
	CompareLess:             "Less Than",
	CompareGreaterEquals:    "Greater Than Or Equals",
	CompareLessEquals:       "Less Than Or Equals",
	LogicalAnd:              "Logical And",
	LogicalOr:               "Logical Or",
	LogicalNot:              "Logical Not",
	OpenParen:               "Open Parenthesis",
	CloseParen:              "Close Parenthesis",
	OpenBracket:             "Open Bracket",
	CloseBracket:            "Close Bracket",
	OpenBrace:               "Open Brace",
	CloseBrace:              "Close Brace",
	Comma:                   "Comma",
	Colon:                   "Colon",
	Period:                  "Period",
	NewLine:                 "New Line",
	EndOfFile:               "End Of File",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText renders the kind by name, so JSON output stays readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is one lexical unit with its source position. Tokens are plain
// values: two tokens with equal fields are equal.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
	File string `json:"file"`
	Line int    `json:"line"`
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s = '%s'", t.Kind, t.Text)
}

func (t Token) IsLogicalOperator() bool {
	return t.Kind == LogicalAnd || t.Kind == LogicalOr
}

func (t Token) IsComparisonOperator() bool {
	return t.Kind >= CompareEquals && t.Kind <= CompareLessEquals
}

func (t Token) IsBitwiseOperator() bool {
	return t.Kind >= BitwiseAnd && t.Kind <= BitwiseRightShift
}

func (t Token) IsAdditiveOperator() bool {
	return t.Kind == Plus || t.Kind == Minus || t.Kind == Concat
}

func (t Token) IsMultiplicativeOperator() bool {
	return t.Kind == Times || t.Kind == Divide || t.Kind == Modulo
}

// IsUnaryOperator reports whether the token may prefix a primary expression.
func (t Token) IsUnaryOperator() bool {
	switch t.Kind {
	case LogicalNot, BitwiseNot, Plus, Minus:
		return true
	default:
		return false
	}
}

// IsTerminator reports whether the token ends a statement line.
func (t Token) IsTerminator() bool {
	return t.Kind == NewLine || t.Kind == EndOfFile
}
