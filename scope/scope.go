/*
Package scope implements the per-call-frame variable environment: a LIFO
stack of scopes with no cross-frame chaining. A function call pushes one
CallFrame; variable lookup only ever walks the scopes belonging to the
frame currently executing — a function body never sees another frame's
locals, even its caller's.

File: scope/scope.go
*/
package scope

import "github.com/amaji/lumen/objects"

// Scope is a single lexical block's variable bindings, plus the attribute
// bindings established by a matching `catch` for the exception variable it
// introduces. Scopes are created on block entry and discarded on every
// exit path (normal fallthrough, break, continue, return, exception).
type Scope struct {
	vars  map[string]objects.Value
	attrs map[string]map[string]objects.Value
}

func newScope() *Scope {
	return &Scope{
		vars:  make(map[string]objects.Value),
		attrs: make(map[string]map[string]objects.Value),
	}
}

// declare binds a new name in this scope only. It reports false if the
// name already exists here — callers turn that into VariableAlreadyDeclared.
func (s *Scope) declare(name string, v objects.Value) bool {
	if _, exists := s.vars[name]; exists {
		return false
	}
	s.vars[name] = v
	return true
}

// bindException records the attribute set a `catch` binds to its exception
// variable, so later e.attr reads resolve against it.
func (s *Scope) bindException(binding string, attrs map[string]objects.Value) {
	s.attrs[binding] = attrs
}

func (s *Scope) attribute(binding, attr string) (objects.Value, bool) {
	m, ok := s.attrs[binding]
	if !ok {
		return nil, false
	}
	v, ok := m[attr]
	return v, ok
}

// CallFrame is one function activation: a name (for recursion-depth and
// diagnostic purposes) and its own exclusive, non-shared stack of scopes.
// A frame always has at least one scope, the function's root scope holding
// its parameters.
type CallFrame struct {
	FunctionName string
	scopes       []*Scope
}

// NewCallFrame creates a frame with a single root scope, ready to receive
// parameter bindings.
func NewCallFrame(functionName string) *CallFrame {
	return &CallFrame{
		FunctionName: functionName,
		scopes:       []*Scope{newScope()},
	}
}

// PushScope opens a fresh, empty scope on entering a block.
func (f *CallFrame) PushScope() {
	f.scopes = append(f.scopes, newScope())
}

// PopScope closes the innermost scope on any exit from a block.
func (f *CallFrame) PopScope() {
	if len(f.scopes) == 0 {
		return
	}
	f.scopes = f.scopes[:len(f.scopes)-1]
}

func (f *CallFrame) innermost() *Scope {
	return f.scopes[len(f.scopes)-1]
}

// Declare binds name in the innermost scope. It reports false if name is
// already bound there (not in an outer scope — shadowing across a block
// boundary is legal).
func (f *CallFrame) Declare(name string, v objects.Value) bool {
	return f.innermost().declare(name, v)
}

// Lookup searches scopes from innermost to outermost within this frame
// only; it never reaches into an enclosing call's frame.
func (f *CallFrame) Lookup(name string) (objects.Value, bool) {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if v, ok := f.scopes[i].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates name in place in whichever scope of this frame already
// holds it, searching innermost to outermost. It reports false if no scope
// in this frame has bound the name yet, in which case the caller is
// expected to Declare it fresh in the innermost scope.
func (f *CallFrame) Assign(name string, v objects.Value) bool {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if _, ok := f.scopes[i].vars[name]; ok {
			f.scopes[i].vars[name] = v
			return true
		}
	}
	return false
}

// BindExceptionAttrs records attrs under binding in the innermost scope,
// used by a matching `catch` to expose e.attr reads.
func (f *CallFrame) BindExceptionAttrs(binding string, attrs map[string]objects.Value) {
	f.innermost().bindException(binding, attrs)
}

// Attribute resolves binding.attr by searching this frame's scopes
// innermost to outermost, matching how an ordinary variable binding would
// be resolved.
func (f *CallFrame) Attribute(binding, attr string) (objects.Value, bool) {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if v, ok := f.scopes[i].attribute(binding, attr); ok {
			return v, true
		}
	}
	return nil, false
}

// HasBinding reports whether name is bound as an exception variable
// anywhere in this frame (used to distinguish UndefinedVariable from
// UndefinedAttribute when evaluating e.attr).
func (f *CallFrame) HasBinding(name string) bool {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if _, ok := f.scopes[i].attrs[name]; ok {
			return true
		}
	}
	return false
}
