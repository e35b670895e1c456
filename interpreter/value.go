package interpreter

import (
	"fmt"
	"math"
)

// ValueKind tags runtime values.
type ValueKind int

const (
	KindVoid ValueKind = iota
	KindNumber
	KindLabel
	KindFunction
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindLabel:
		return "label"
	case KindFunction:
		return "function"
	default:
		return "void"
	}
}

// Value is the result of evaluating a statement.
type Value interface {
	Kind() ValueKind
}

// Void is produced by statements that yield nothing.
type Void struct{}

func (Void) Kind() ValueKind { return KindVoid }

// Number is a numeric value. A 32-bit target sees it as an integer part
// and a fractional part scaled to the full uint32 range.
type Number struct {
	Value float64
}

func (Number) Kind() ValueKind { return KindNumber }

// Integer returns the integer part truncated to 32 bits.
func (n Number) Integer() uint32 {
	i, _ := math.Modf(n.Value)
	return uint32(int64(i))
}

// Fractional returns the fractional part scaled to [0, MaxUint32].
func (n Number) Fractional() uint32 {
	_, f := math.Modf(math.Abs(n.Value))
	return uint32(f * math.MaxUint32)
}

func (n Number) String() string {
	return fmt.Sprintf("%g", n.Value)
}

// Label marks a position: the number of instructions that precede it in its
// section.
type Label struct {
	Section string
	Index   int
}

func (Label) Kind() ValueKind { return KindLabel }

// Function is a declared function (macro). MaxSlot is the highest argument
// slot its body refers to, or -1 if it takes no arguments.
type Function struct {
	Name    string
	MaxSlot int
	Length  int
}

// Arity returns the number of arguments a call must supply.
func (f Function) Arity() int {
	return f.MaxSlot + 1
}

func (Function) Kind() ValueKind { return KindFunction }
