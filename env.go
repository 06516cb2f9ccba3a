package slate

import "fmt"

// An Environment maps names to values for the single global scope.
// There is no parent chain; blocks do not introduce scopes.
type Environment struct {
	bindings map[string]Value
}

// NewEnvironment creates an environment pre-populated with the
// runtime's prototype bindings.
func NewEnvironment(rt *Runtime) *Environment {
	return &Environment{bindings: map[string]Value{
		"Object":  rt.Object,
		"Number":  rt.Number,
		"Boolean": rt.Boolean,
		"String":  rt.String,
	}}
}

// Get returns the value bound to name.
func (e *Environment) Get(name string) (Value, error) {
	v, ok := e.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}
	return v, nil
}

// Set binds name to value, replacing any previous binding.
func (e *Environment) Set(name string, value Value) {
	e.bindings[name] = value
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.bindings[name]
	return ok
}
