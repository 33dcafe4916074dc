// This file contains the logic for translating decoded HCL blocks into the
// format-agnostic settings model.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/schema"
	"github.com/renderpipe/renderconf/internal/settings"
)

// translateFile merges the blocks of a single decoded file into the model.
func (l *Loader) translateFile(ctx context.Context, root *fileRoot, model *settings.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, s := range root.Settings {
		if s.Option == schema.OptRenderMetadata {
			return fmt.Errorf("option %q is a list and must be provided as render_metadata blocks, not a settings block", s.Option)
		}
		if _, dup := model.Bindings[s.Option]; dup {
			return fmt.Errorf("option %q is bound more than once", s.Option)
		}
		model.Bindings[s.Option] = &settings.Binding{
			Option: s.Option,
			Value:  s.Value,
		}
		logger.Debug("Bound option.", "option", s.Option)
	}

	for _, md := range root.Metadata {
		binding := model.Bindings[schema.OptRenderMetadata]
		if binding == nil {
			binding = &settings.Binding{Option: schema.OptRenderMetadata}
			model.Bindings[schema.OptRenderMetadata] = binding
		}
		binding.Items = append(binding.Items, settings.MetadataItem{
			Key:        md.Key,
			Type:       md.Type,
			Expression: md.Expression,
			Value:      md.Value,
			Group:      md.Group,
		})
		logger.Debug("Added render metadata entry.", "key", md.Key)
	}

	for _, t := range root.Templates {
		if _, dup := model.Templates[t.Name]; dup {
			return fmt.Errorf("template %q is declared more than once", t.Name)
		}
		model.Templates[t.Name] = &settings.Template{
			Name:   t.Name,
			Fields: t.Fields,
		}
		logger.Debug("Declared template.", "template", t.Name, "fields", len(t.Fields))
	}

	return nil
}
