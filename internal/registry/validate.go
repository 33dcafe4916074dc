package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/metadata"
	"github.com/renderpipe/renderconf/internal/schema"
)

// Validate performs a strict parity check between the declared schema and
// the site settings. It checks both the presence of every binding and the
// shape of its value, and accumulates all violations into a single error.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	// Bindings for options the schema never declared are configuration
	// mistakes, not extensions.
	for name := range r.Model.Bindings {
		if _, ok := r.Manifest.Option(name); !ok {
			errs = append(errs, fmt.Sprintf("settings bind option %q which is not declared in the schema", name))
		}
	}

	for _, opt := range r.Manifest.Options {
		binding, bound := r.Model.Bindings[opt.Name]

		if !bound {
			if !opt.AllowsEmpty {
				errs = append(errs, fmt.Sprintf("option %q is required but not bound by the settings", opt.Name))
			}
			continue
		}

		switch opt.Type {
		case schema.TypeTemplate:
			if binding.Value == "" {
				if !opt.AllowsEmpty {
					errs = append(errs, fmt.Sprintf("option %q must reference a template, got an empty value", opt.Name))
				}
				continue
			}
			tmpl, ok := r.Model.Templates[binding.Value]
			if !ok {
				errs = append(errs, fmt.Sprintf("option %q references template %q which is not declared", opt.Name, binding.Value))
				continue
			}
			for _, field := range opt.RequiredFields() {
				if !tmpl.HasField(field) {
					errs = append(errs, fmt.Sprintf("option %q: template %q does not bind required field %q", opt.Name, tmpl.Name, field))
				}
			}

		case schema.TypeString:
			if strings.TrimSpace(binding.Value) == "" && !opt.AllowsEmpty {
				errs = append(errs, fmt.Sprintf("option %q requires a non-empty value", opt.Name))
			}

		case schema.TypeList:
			if err := metadata.ValidateConfig(binding.Items); err != nil {
				errs = append(errs, fmt.Sprintf("option %q: %v", opt.Name, err))
				continue
			}
			// Constant entries must parse as their declared type; expression
			// entries are only evaluable at render time.
			for _, item := range binding.Items {
				if item.Expression != "" {
					continue
				}
				if _, err := metadata.TypedValue(item); err != nil {
					errs = append(errs, fmt.Sprintf("option %q: %v", opt.Name, err))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Settings validation passed.",
		"options", len(r.Manifest.Options),
		"bindings", len(r.Model.Bindings))
	return nil
}
