package ast

// Field is a named, typed piece of contract state, or a named typed
// parameter of a constructor or transition. Order is significant: it
// mirrors the order fields and parameters appear in source.
type Field struct {
	Name string
	Type Type
}

// NewField builds a Field from a name and a type.
func NewField(name string, typ Type) Field {
	return Field{Name: name, Type: typ}
}

// Equal reports whether f and other have the same name and equal types.
func (f Field) Equal(other Field) bool {
	return f.Name == other.Name && f.Type.Equal(other.Type)
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Transition is an externally callable entry point of a contract.
type Transition struct {
	Name   string
	Params []Field
}

// NewTransition builds a Transition with no parameters.
func NewTransition(name string) Transition {
	return Transition{Name: name}
}

// NewTransitionWithParams builds a Transition with the given, ordered
// parameter list.
func NewTransitionWithParams(name string, params []Field) Transition {
	return Transition{Name: name, Params: params}
}

// Equal reports whether t and other have the same name and pointwise
// equal parameter lists.
func (t Transition) Equal(other Transition) bool {
	return t.Name == other.Name && fieldsEqual(t.Params, other.Params)
}

// Contract is the fully parsed declarative surface of a source file: its
// name, constructor parameters, mutable fields, and transitions. It is
// produced once by a parse and is safe to read concurrently thereafter —
// nothing in this package mutates a Contract after construction.
type Contract struct {
	Name        string
	InitParams  []Field
	Fields      []Field
	Transitions []Transition
}

// Equal reports whether c and other describe the same contract surface:
// equal name, and pointwise equal init params, fields and transitions.
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Name != other.Name {
		return false
	}
	if !fieldsEqual(c.InitParams, other.InitParams) {
		return false
	}
	if !fieldsEqual(c.Fields, other.Fields) {
		return false
	}
	if len(c.Transitions) != len(other.Transitions) {
		return false
	}
	for i := range c.Transitions {
		if !c.Transitions[i].Equal(other.Transitions[i]) {
			return false
		}
	}
	return true
}
