package registry

import (
	"github.com/renderpipe/renderconf/internal/schema"
	"github.com/renderpipe/renderconf/internal/settings"
)

// Registry holds the declared schema and the site-provided bindings for a
// single application instance.
type Registry struct {
	Manifest schema.Manifest
	Model    *settings.Model
}

// New creates a Registry for the given schema declaration with an empty
// settings model.
func New(manifest schema.Manifest) *Registry {
	return &Registry{
		Manifest: manifest,
		Model:    settings.NewModel(),
	}
}

// PopulateFromModel attaches a loaded settings model to the registry for
// validation and later use by the pipelines.
func (r *Registry) PopulateFromModel(model *settings.Model) {
	if model != nil {
		r.Model = model
	}
}

// MetadataItems returns the configured render_metadata entries, or nil
// when the option is unbound.
func (r *Registry) MetadataItems() []settings.MetadataItem {
	binding, ok := r.Model.Bindings[schema.OptRenderMetadata]
	if !ok {
		return nil
	}
	return binding.Items
}
