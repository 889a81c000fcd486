/*
Package env implements Rocket's lexical scope chain: the Environment type
that backs every `let` binding, function parameter frame, and block scope
in the evaluator.

Grounded in the teacher's scope.Scope (scope/scope.go) — a parent-linked
chain with lazily-initialized variable maps — pared down to what Rocket's
single `let` declares (no const/type tracking, since the language has
neither).

File : rocket/env/environment.go
*/
package env

import "github.com/rocket-lang/rocket/value"

// Environment is one frame in the lexical scope chain. A nil Parent marks
// the global frame.
type Environment struct {
	vars   map[string]value.Value
	Parent *Environment
}

// New creates a fresh Environment with the given parent, or the global
// frame when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), Parent: parent}
}

// Lookup searches this frame and, failing that, each enclosing frame in
// turn, implementing standard lexical scoping and satisfying value.Env so
// closures can walk a captured frame without the value package importing
// env.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Lookup(name)
	}
	return nil, false
}

// Define binds name to v in this frame only, shadowing any outer binding
// of the same name. Used for `let` declarations and function parameters.
func (e *Environment) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Assign updates an existing binding of name, searching outward from this
// frame to the frame where it was defined, and reports whether one was
// found. The evaluator does not call it: assignment statements only ever
// target subscript or attribute expressions and mutate the container in
// place, name rebinding goes through Define via `let`, and loop variables
// are bound with Define in a fresh per-iteration frame.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}

// Child returns a new Environment nested under e, satisfying value.Env.
func (e *Environment) Child() value.Env {
	return New(e)
}
