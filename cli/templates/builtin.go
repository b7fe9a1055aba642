package templates

// Dots is a convenience for building descriptors with a fixed
// namespace depth.
func Dots(n int) *int {
	return &n
}

// commonVars are consumed by every built-in template.
var commonVars = []Var{
	{Name: "author", Default: "", Description: "Name of the project author"},
	{Name: "author_email", Default: "", Description: "Email of the project author"},
	{Name: "description", Default: "", Description: "One-line description of the project"},
	{Name: "keywords", Default: "", Description: "Space-separated list of project keywords"},
	{Name: "license_name", Default: "GPL", Description: "License under which the project is distributed"},
	{Name: "version", Default: "0.1", Description: "Initial version number of the project"},
}

// Builtin returns the registry of templates compiled into the binary.
func Builtin() *Registry {
	return NewRegistry(
		&Descriptor{
			Name:    "basic_package",
			Summary: "A basic package skeleton",
			Help: "A skeleton for a standalone package with no namespace, " +
				"like 'foo'.",
			NDots: Dots(0),
			Vars:  commonVars,
		},
		&Descriptor{
			Name:    "basic_namespace",
			Summary: "A package skeleton with a basic namespace",
			Help: "A skeleton for a package living in a single namespace, " +
				"like 'foo.bar'.",
			NDots: Dots(1),
			Vars:  commonVars,
		},
		&Descriptor{
			Name:    "nested_namespace",
			Summary: "A package skeleton with a nested namespace",
			Help: "A skeleton for a package living in a nested namespace, " +
				"like 'foo.bar.baz'.",
			NDots: Dots(2),
			Vars:  commonVars,
		},
		&Descriptor{
			Name:    "plone3_theme",
			Summary: "A theme skeleton for Plone 3",
			Help: "A skeleton for an installable theme targeting Plone 3 " +
				"sites, living in a single namespace.",
			NDots: Dots(1),
			Vars: append([]Var{
				{
					Name:        "empty_styles",
					Default:     "True",
					Description: "Override default public stylesheets with empty ones",
				},
			}, commonVars...),
		},
	)
}
