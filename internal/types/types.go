package types

import "strings"

// Type represents a static type in the IR
type Type struct {
	Name       string  // "Any", "String", "Int", ... or a class name
	Nullable   bool    // true for T?
	TypeParams []*Type // e.g., [String] for List<String>
}

// Builtin types
var (
	Any     = &Type{Name: "Any"}
	Nothing = &Type{Name: "Nothing"}
	Unit    = &Type{Name: "Unit"}
	Boolean = &Type{Name: "Boolean"}
	Int     = &Type{Name: "Int"}
	String  = &Type{Name: "String"}

	NullableAny     = &Type{Name: "Any", Nullable: true}
	NullableNothing = &Type{Name: "Nothing", Nullable: true}
)

// Named returns a non-null class type with the given type arguments
func Named(name string, params ...*Type) *Type {
	return &Type{Name: name, TypeParams: params}
}

// MakeNullable returns the nullable variant of t
func MakeNullable(t *Type) *Type {
	if t == nil || t.Nullable {
		return t
	}
	c := *t
	c.Nullable = true
	return &c
}

// MakeNotNull returns the non-null variant of t
func MakeNotNull(t *Type) *Type {
	if t == nil || !t.Nullable {
		return t
	}
	c := *t
	c.Nullable = false
	return &c
}

// Equal checks if two types are equal
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Name != other.Name || t.Nullable != other.Nullable {
		return false
	}
	if len(t.TypeParams) != len(other.TypeParams) {
		return false
	}
	for i := range t.TypeParams {
		if !t.TypeParams[i].Equal(other.TypeParams[i]) {
			return false
		}
	}
	return true
}

// String returns the string representation of the type
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	s := t.Name
	if len(t.TypeParams) > 0 {
		params := make([]string, len(t.TypeParams))
		for i, p := range t.TypeParams {
			params[i] = p.String()
		}
		s += "<" + strings.Join(params, ", ") + ">"
	}
	if t.Nullable {
		s += "?"
	}
	return s
}
