package object

// ScopeKind classifies an environment in the scope chain.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	FunctionScope
	LoopScope
	BranchScope
)

// Binding is a named value with its declared type and mutability.
type Binding struct {
	Value      Object
	Type       Type
	Assignable bool
}

// Environment is a lexical scope with an optional parent.
type Environment struct {
	kind   ScopeKind
	store  map[string]Binding
	parent *Environment
}

// NewEnvironment builds a scope. parent may be nil for the global scope.
func NewEnvironment(kind ScopeKind, parent *Environment) *Environment {
	return &Environment{
		kind:   kind,
		store:  make(map[string]Binding),
		parent: parent,
	}
}

// Define introduces a binding in this scope. It fails when the name is
// already taken in the same scope; shadowing an outer scope is allowed.
func (e *Environment) Define(name string, value Object, typ Type, assignable bool) bool {
	if _, exists := e.store[name]; exists {
		return false
	}
	e.store[name] = Binding{Value: value, Type: typ, Assignable: assignable}
	return true
}

// Assign mutates the nearest binding with the given name. It fails when
// the binding does not exist or is not assignable.
func (e *Environment) Assign(name string, value Object) bool {
	if b, exists := e.store[name]; exists {
		if !b.Assignable {
			return false
		}
		b.Value = value
		e.store[name] = b
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}

// Resolve looks a name up through the scope chain.
func (e *Environment) Resolve(name string) (Binding, bool) {
	if b, exists := e.store[name]; exists {
		return b, true
	}
	if e.parent != nil {
		return e.parent.Resolve(name)
	}
	return Binding{}, false
}

// Declared reports whether the name resolves anywhere in the chain.
func (e *Environment) Declared(name string) bool {
	_, ok := e.Resolve(name)
	return ok
}

// Kind returns the scope's classification.
func (e *Environment) Kind() ScopeKind {
	return e.kind
}
