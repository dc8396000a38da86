package ir

import (
	"fmt"

	"github.com/lhaig/nullcheck/internal/types"
)

// Scope represents a lexical scope inside one owning declaration.
// Child scopes share the owner's temporary counter so temporaries stay unique
// across the whole declaration body.
type Scope struct {
	parent *Scope
	owner  string
	vars   map[string]*Variable
	next   *int
}

// NewDeclScope creates the root scope for the body of the named declaration.
func NewDeclScope(owner string) *Scope {
	return &Scope{
		owner: owner,
		vars:  make(map[string]*Variable),
		next:  new(int),
	}
}

// Child creates a nested scope with the same owner.
func (s *Scope) Child() *Scope {
	return &Scope{
		parent: s,
		owner:  s.owner,
		vars:   make(map[string]*Variable),
		next:   s.next,
	}
}

// Owner returns the name of the declaration this scope belongs to.
func (s *Scope) Owner() string {
	return s.owner
}

// Define adds a variable to the current scope.
// Returns an error if the name is already defined in this scope.
func (s *Scope) Define(v *Variable) error {
	if _, exists := s.vars[v.Name]; exists {
		return fmt.Errorf("variable '%s' already defined in this scope", v.Name)
	}
	s.vars[v.Name] = v
	return nil
}

// Resolve looks up a variable in the current scope and parent scopes.
// Returns nil if the name is not found.
func (s *Scope) Resolve(name string) *Variable {
	if v, ok := s.vars[name]; ok {
		return v
	}
	if s.parent != nil {
		return s.parent.Resolve(name)
	}
	return nil
}

// Visible reports whether v itself (not just its name) is in scope.
func (s *Scope) Visible(v *Variable) bool {
	return v != nil && s.Resolve(v.Name) == v
}

// FreshTemporary creates and defines a new compiler temporary of type t.
func (s *Scope) FreshTemporary(t *types.Type) *Variable {
	var n int
	var name string
	for {
		n = *s.next
		*s.next++
		name = fmt.Sprintf("tmp%d", n)
		if s.owner != "" {
			name += "_" + s.owner
		}
		if s.Resolve(name) == nil {
			break
		}
	}
	v := &Variable{ID: n, Name: name, Type: t, Temporary: true}
	s.vars[name] = v
	return v
}
