// Package ast is the language-neutral in-memory model produced by the
// parser: contracts, fields, transitions and the Scilla type grammar.
// Nothing in this package parses source text; it only describes the
// shape of what a parse produces, so downstream binding generators, ABI
// exporters and documentation tools can depend on it without pulling in
// the lexer or parser.
package ast

import "fmt"

// Type is the sealed sum of every Scilla type expression the surface
// grammar can produce. Concrete implementations are value types so two
// Types compare structurally through Equal rather than pointer identity.
type Type interface {
	fmt.Stringer
	// Equal reports whether other is the same variant with equal
	// components, recursively.
	Equal(other Type) bool
	isType()
}

// primitiveType covers the thirteen type constants that carry no
// parameters: the signed/unsigned integer family, String, BNum, Bool,
// Message and Event.
type primitiveType struct{ name string }

func (t primitiveType) isType() {}
func (t primitiveType) String() string { return t.name }
func (t primitiveType) Equal(other Type) bool {
	o, ok := other.(primitiveType)
	return ok && o.name == t.name
}

// The primitive type values. Declared as Type (not primitiveType) so
// callers never need to know the concrete implementation.
var (
	Int32   Type = primitiveType{"Int32"}
	Int64   Type = primitiveType{"Int64"}
	Int128  Type = primitiveType{"Int128"}
	Int256  Type = primitiveType{"Int256"}
	Uint32  Type = primitiveType{"Uint32"}
	Uint64  Type = primitiveType{"Uint64"}
	Uint128 Type = primitiveType{"Uint128"}
	Uint256 Type = primitiveType{"Uint256"}
	String  Type = primitiveType{"String"}
	BNum    Type = primitiveType{"BNum"}
	Bool    Type = primitiveType{"Bool"}
	Message Type = primitiveType{"Message"}
	Event   Type = primitiveType{"Event"}
)

var primitivesByName = map[string]Type{
	"Int32": Int32, "Int64": Int64, "Int128": Int128, "Int256": Int256,
	"Uint32": Uint32, "Uint64": Uint64, "Uint128": Uint128, "Uint256": Uint256,
	"String": String, "BNum": BNum, "Bool": Bool, "Message": Message, "Event": Event,
}

// PrimitiveNamed looks up one of the thirteen fixed primitive types by its
// exact source spelling. This is the "primitive type referenced by name"
// constructor called out in the data-model design.
func PrimitiveNamed(name string) (Type, bool) {
	t, ok := primitivesByName[name]
	return t, ok
}

// ByStrType is the unsized raw byte string type, the bare "ByStr" atom.
type ByStrType struct{}

func (ByStrType) isType()          {}
func (ByStrType) String() string   { return "ByStr" }
func (ByStrType) Equal(o Type) bool {
	_, ok := o.(ByStrType)
	return ok
}

// ByStrNType is a byte string with a fixed, compile-time length, e.g.
// ByStr20 or ByStr64. N is always >= 1.
type ByStrNType struct{ N int }

func (ByStrNType) isType() {}
func (t ByStrNType) String() string { return fmt.Sprintf("ByStr%d", t.N) }
func (t ByStrNType) Equal(o Type) bool {
	other, ok := o.(ByStrNType)
	return ok && other.N == t.N
}

// MapType is a Scilla associative map, Map K V.
type MapType struct{ Key, Value Type }

func (MapType) isType() {}
func (t MapType) String() string { return fmt.Sprintf("(Map %s, %s)", t.Key, t.Value) }
func (t MapType) Equal(o Type) bool {
	other, ok := o.(MapType)
	return ok && t.Key.Equal(other.Key) && t.Value.Equal(other.Value)
}

// ListType is a homogeneous Scilla list, List T.
type ListType struct{ Elem Type }

func (ListType) isType() {}
func (t ListType) String() string { return fmt.Sprintf("(List %s)", t.Elem) }
func (t ListType) Equal(o Type) bool {
	other, ok := o.(ListType)
	return ok && t.Elem.Equal(other.Elem)
}

// OptionType is Scilla's Option T.
type OptionType struct{ Inner Type }

func (OptionType) isType() {}
func (t OptionType) String() string { return fmt.Sprintf("(Option %s)", t.Inner) }
func (t OptionType) Equal(o Type) bool {
	other, ok := o.(OptionType)
	return ok && t.Inner.Equal(other.Inner)
}

// PairType is Scilla's Pair A B.
type PairType struct{ First, Second Type }

func (PairType) isType() {}
func (t PairType) String() string { return fmt.Sprintf("(Pair %s %s)", t.First, t.Second) }
func (t PairType) Equal(o Type) bool {
	other, ok := o.(PairType)
	return ok && t.First.Equal(other.First) && t.Second.Equal(other.Second)
}

// CustomType captures any other capitalized identifier used in a type
// position, e.g. a user-declared ADT the parser has no symbol table for.
type CustomType struct{ Name string }

func (CustomType) isType() {}
func (t CustomType) String() string { return t.Name }
func (t CustomType) Equal(o Type) bool {
	other, ok := o.(CustomType)
	return ok && other.Name == t.Name
}

// AddressType is a ByStr20 refined by an AddressKind.
type AddressType struct{ Kind AddressKind }

func (AddressType) isType() {}
func (t AddressType) String() string { return t.Kind.addressString() }
func (t AddressType) Equal(o Type) bool {
	other, ok := o.(AddressType)
	return ok && t.Kind.equalKind(other.Kind)
}

// AddressKind is the sealed set of structural refinements a ByStr20
// address type can carry.
type AddressKind interface {
	addressString() string
	equalKind(other AddressKind) bool
	isAddressKind()
}

// RawRefinement is a plain 20-byte address with no structural constraint.
// The surface grammar never emits this directly — a bare "ByStr20" parses
// to ByStrNType{20} — but it completes the AddressKind enumeration for
// callers building or normalizing Type values themselves (e.g. a binding
// generator that wants to treat every address uniformly as AddressType).
type RawRefinement struct{}

func (RawRefinement) isAddressKind()               {}
func (RawRefinement) addressString() string        { return "ByStr20" }
func (RawRefinement) equalKind(o AddressKind) bool { _, ok := o.(RawRefinement); return ok }

// LibraryRefinement is "ByStr20 with library end".
type LibraryRefinement struct{}

func (LibraryRefinement) isAddressKind()        {}
func (LibraryRefinement) addressString() string { return "ByStr20 with library end" }
func (LibraryRefinement) equalKind(o AddressKind) bool {
	_, ok := o.(LibraryRefinement)
	return ok
}

// ContractRefinement is "ByStr20 with contract field f1 : T1, ... end".
// Fields may be empty and may themselves recursively contain further
// ContractRefinement values.
type ContractRefinement struct{ Fields []Field }

func (ContractRefinement) isAddressKind() {}

func (r ContractRefinement) addressString() string {
	if len(r.Fields) == 0 {
		return "ByStr20 with contract end"
	}
	s := "ByStr20 with contract "
	for i, f := range r.Fields {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("field %s : %s", f.Name, f.Type)
	}
	return s + " end"
}

func (r ContractRefinement) equalKind(o AddressKind) bool {
	other, ok := o.(ContractRefinement)
	if !ok || len(r.Fields) != len(other.Fields) {
		return false
	}
	for i := range r.Fields {
		if !r.Fields[i].Equal(other.Fields[i]) {
			return false
		}
	}
	return true
}
