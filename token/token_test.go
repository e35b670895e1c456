package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorClasses(t *testing.T) {
	tests := []struct {
		kind           Kind
		logical        bool
		comparison     bool
		bitwise        bool
		additive       bool
		multiplicative bool
		unary          bool
	}{
		{kind: LogicalAnd, logical: true},
		{kind: LogicalOr, logical: true},
		{kind: LogicalNot, unary: true},
		{kind: CompareEquals, comparison: true},
		{kind: CompareStrictNotEquals, comparison: true},
		{kind: CompareLessEquals, comparison: true},
		{kind: BitwiseAnd, bitwise: true},
		{kind: BitwiseNot, bitwise: true, unary: true},
		{kind: BitwiseRightShift, bitwise: true},
		{kind: Plus, additive: true, unary: true},
		{kind: Minus, additive: true, unary: true},
		{kind: Concat, additive: true},
		{kind: Times, multiplicative: true},
		{kind: Divide, multiplicative: true},
		{kind: Modulo, multiplicative: true},
		{kind: Exponent},
		{kind: AssignEquals},
		{kind: Comma},
	}
	for _, tc := range tests {
		tok := Token{Kind: tc.kind}
		assert.Equal(t, tc.logical, tok.IsLogicalOperator(), tc.kind.String())
		assert.Equal(t, tc.comparison, tok.IsComparisonOperator(), tc.kind.String())
		assert.Equal(t, tc.bitwise, tok.IsBitwiseOperator(), tc.kind.String())
		assert.Equal(t, tc.additive, tok.IsAdditiveOperator(), tc.kind.String())
		assert.Equal(t, tc.multiplicative, tok.IsMultiplicativeOperator(), tc.kind.String())
		assert.Equal(t, tc.unary, tok.IsUnaryOperator(), tc.kind.String())
	}
}

func TestTokenEquality(t *testing.T) {
	a := Token{Kind: Number, Text: "12", File: "/src/a.tmm", Line: 3}
	b := Token{Kind: Number, Text: "12", File: "/src/a.tmm", Line: 3}
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	b.Line = 4
	assert.False(t, a == b)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Hexadecimal = '1F'", Token{Kind: Hexadecimal, Text: "1F"}.String())
	assert.Equal(t, "Comma", Token{Kind: Comma}.String())
	assert.Equal(t, "Unknown", Kind(-1).String())
	assert.Equal(t, "New Line", NewLine.String())
}

func TestJSON(t *testing.T) {
	out, err := json.Marshal(Token{Kind: Keyword, Text: "MOV", File: "a.tmm", Line: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Keyword","text":"MOV","file":"a.tmm","line":1}`, string(out))
}
