// Package templates describes generator templates and the registries
// they are looked up in.
package templates

import "sort"

// Var is a variable a template expects, with its default value.
type Var struct {
	// Name is a variable name.
	Name string
	// Default is a default value.
	Default string
	// Description is a human readable explanation shown in the
	// defaults file template.
	Description string
}

// Descriptor describes a single generator template.
type Descriptor struct {
	// Name is the template name used for lookup.
	Name string
	// Summary is a one line template description.
	Summary string
	// Help is an optional longer description.
	Help string
	// NDots is the namespace depth the template expects in a project
	// name. Nil means the template accepts any depth.
	NDots *int
	// Vars is the set of variables the template consumes.
	Vars []Var
}

// Provider resolves template names to descriptors. How templates get
// registered is up to the implementation.
type Provider interface {
	// Lookup returns the descriptor registered under name.
	Lookup(name string) (*Descriptor, bool)
	// All returns every known descriptor, sorted by name.
	All() []*Descriptor
}

// Multi is a Provider combining several providers, first match wins.
type Multi []Provider

// Lookup returns the descriptor registered under name.
func (m Multi) Lookup(name string) (*Descriptor, bool) {
	for _, provider := range m {
		if descriptor, found := provider.Lookup(name); found {
			return descriptor, true
		}
	}
	return nil, false
}

// All returns every known descriptor, sorted by name. A descriptor
// shadowed by an earlier provider is not reported twice.
func (m Multi) All() []*Descriptor {
	seen := map[string]bool{}
	var all []*Descriptor
	for _, provider := range m {
		for _, descriptor := range provider.All() {
			if seen[descriptor.Name] {
				continue
			}
			seen[descriptor.Name] = true
			all = append(all, descriptor)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Registry is a static in-memory Provider.
type Registry struct {
	byName map[string]*Descriptor
}

// NewRegistry creates a registry over the given descriptors.
func NewRegistry(descriptors ...*Descriptor) *Registry {
	registry := &Registry{byName: make(map[string]*Descriptor, len(descriptors))}
	for _, descriptor := range descriptors {
		registry.byName[descriptor.Name] = descriptor
	}
	return registry
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	descriptor, found := r.byName[name]
	return descriptor, found
}

// All returns every registered descriptor, sorted by name.
func (r *Registry) All() []*Descriptor {
	all := make([]*Descriptor, 0, len(r.byName))
	for _, descriptor := range r.byName {
		all = append(all, descriptor)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
