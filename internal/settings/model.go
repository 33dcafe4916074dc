package settings

import "context"

// Model is the unified representation of everything a site configuration
// provides: one binding per declared option, plus the field sets of the
// path templates those bindings may reference.
type Model struct {
	Bindings  map[string]*Binding
	Templates map[string]*Template
}

// NewModel returns an empty, initialized settings model.
func NewModel() *Model {
	return &Model{
		Bindings:  make(map[string]*Binding),
		Templates: make(map[string]*Template),
	}
}

// Binding is the site-provided value of a single declared option. Value
// carries template-reference and string options; Items carries the
// render_metadata list.
type Binding struct {
	Option string
	Value  string
	Items  []MetadataItem
}

// MetadataItem is one entry of the render_metadata option. Exactly one of
// Expression and Value is expected to be set.
type MetadataItem struct {
	Key        string
	Type       string
	Expression string
	Value      string
	Group      string
}

// Template models a named path template as its set of field tokens. The
// integration never resolves templates to paths; it only checks that the
// fields an option requires are bound.
type Template struct {
	Name   string
	Fields []string
}

// HasField reports whether the template binds the named token.
func (t *Template) HasField(name string) bool {
	for _, f := range t.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Loader is the interface for a format-specific settings loader. Load
// reads configuration from the given paths (files or directories) and
// translates it into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
