// Package hcl_adapter implements the settings.Loader interface for
// HCL-formatted site configuration files.
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/fsutil"
	"github.com/renderpipe/renderconf/internal/settings"
)

// Loader is the HCL-specific implementation of the settings.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all recognized top-level blocks from any settings file.
type fileRoot struct {
	Settings  []*SettingBlock  `hcl:"settings,block"`
	Metadata  []*MetadataBlock `hcl:"render_metadata,block"`
	Templates []*TemplateBlock `hcl:"template,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

// SettingBlock binds a single declared option to a site-provided value.
type SettingBlock struct {
	Option string `hcl:"option,label"`
	Value  string `hcl:"value"`
}

// MetadataBlock is one render_metadata entry. The label is the metadata key.
type MetadataBlock struct {
	Key        string `hcl:"key,label"`
	Type       string `hcl:"type"`
	Expression string `hcl:"expression,optional"`
	Value      string `hcl:"value,optional"`
	Group      string `hcl:"group,optional"`
}

// TemplateBlock declares the field set of a named path template.
type TemplateBlock struct {
	Name   string   `hcl:"name,label"`
	Fields []string `hcl:"fields"`
}

// Load orchestrates the HCL settings loading process. It is agnostic to
// the origin of the paths and merges blocks from every discovered file
// into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*settings.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered settings files.", "count", len(files))

	model := settings.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode settings file %s: %w", file, diags)
		}

		// Every log line below here names the file it came from.
		fileCtx := ctxlog.With(ctx, "file", file)
		if err := l.translateFile(fileCtx, &root, model); err != nil {
			return nil, fmt.Errorf("in settings file %s: %w", file, err)
		}
	}

	logger.Debug("HCL settings loading complete.",
		"bindings", len(model.Bindings),
		"templates", len(model.Templates))
	return model, nil
}
