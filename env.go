// env.go — the lexical environment chain.
package lox

// Environment is one scope frame: a mutable name-to-value table plus a link
// to the enclosing scope. Frames form a tree at run time, rooted at one
// global environment. Lookup and assignment check the local table first and
// then walk parent-ward; they fail only after exhausting the root.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a scope frame with the given enclosing scope, which
// may be nil for the global environment.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define binds name to v in this scope unconditionally. Redeclaring a name
// in the same scope is legal and simply replaces the previous value.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get returns the nearest enclosing binding for the name token, or an
// undefined-variable runtime error carrying the token.
func (e *Environment) Get(name Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return Value{}, &RuntimeError{Tok: name, Msg: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign mutates the nearest scope (including this one) that already defines
// the name. It never creates a new binding; when no ancestor defines the
// name it returns the same undefined-variable error as Get.
func (e *Environment) Assign(name Token, v Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = v
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return &RuntimeError{Tok: name, Msg: "Undefined variable '" + name.Lexeme + "'."}
}
