package runtime

import "sort"

// Environment provides lexical scoping for rinha runtime values. Frames are
// shared by pointer between closures and the call frames still being built;
// scopes only ever point at ancestor scopes, so the graph is acyclic.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil at top level).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or shadows a binding in the current scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Names returns the names bound in the current scope, sorted.
func (e *Environment) Names() []string {
	out := make([]string, 0, len(e.values))
	for name := range e.values {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
