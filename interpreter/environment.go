package interpreter

import (
	"fmt"

	"github.com/tmm-dev/tmm/common/lifo"
)

// scope is one level of symbol bindings.
type scope struct {
	name    string
	symbols map[string]Value
}

// Environment is a chain of scopes. The outermost one is the global scope
// and is never left.
type Environment struct {
	scopes lifo.Stack[*scope]
}

func NewEnvironment() *Environment {
	env := &Environment{}
	env.Enter("global")
	return env
}

// Enter opens a nested scope.
func (e *Environment) Enter(name string) {
	e.scopes.Push(&scope{name: name, symbols: make(map[string]Value)})
}

// Leave closes the innermost scope.
func (e *Environment) Leave() {
	if e.scopes.Len() > 1 {
		e.scopes.Pop()
	}
}

// Scope returns the name of the innermost scope.
func (e *Environment) Scope() string {
	s, _ := e.scopes.Peek()
	return s.name
}

// Declare binds name in the innermost scope. A name may be declared once per
// scope; inner scopes may shadow outer ones.
func (e *Environment) Declare(name string, v Value) error {
	s, _ := e.scopes.Peek()
	if prev, ok := s.symbols[name]; ok {
		return fmt.Errorf("%q is already declared as a %s in scope %q", name, prev.Kind(), s.name)
	}
	s.symbols[name] = v
	return nil
}

// Resolve looks name up from the innermost scope outwards.
func (e *Environment) Resolve(name string) (Value, bool) {
	var (
		found Value
		ok    bool
	)
	e.scopes.Each(func(s *scope) bool {
		found, ok = s.symbols[name]
		return !ok
	})
	return found, ok
}
