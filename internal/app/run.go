package app

import (
	"context"
	"fmt"

	"github.com/renderpipe/renderconf/internal/aov"
	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/frames"
	"github.com/renderpipe/renderconf/internal/metadata"
	"github.com/renderpipe/renderconf/internal/posttask"
)

// Run executes the requested operations based on the provided configuration.
// Settings were already validated during construction, so Run only reports
// and derives.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Settings are valid.",
		"app", a.registry.Manifest.DisplayName,
		"engine", a.registry.Manifest.SupportedEngines[0])

	if cfg.FrameRange != "" && !cfg.PostTask {
		list, err := frames.SmartList(cfg.FrameRange, cfg.TaskSize)
		if err != nil {
			return fmt.Errorf("failed to compute frame list: %w", err)
		}
		fmt.Fprintln(a.outW, list)
	}

	if cfg.PrintMetadata {
		if err := a.printMetadata(cfg); err != nil {
			return err
		}
	}

	if cfg.NodePath != "" {
		if err := a.printNodeReport(ctx, cfg.NodePath); err != nil {
			return err
		}
	}

	if cfg.PostTask {
		rng, err := frames.Parse(cfg.FrameRange)
		if err != nil {
			return err
		}
		task := posttask.Task{
			OutputDirectory: cfg.OutputDir,
			OutputFilename:  cfg.OutputFile,
			Frames:          rng,
		}
		if err := posttask.Run(ctx, []posttask.Task{task}); err != nil {
			return fmt.Errorf("post task failed: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printMetadata assembles the final metadata item list from the validated
// settings and writes it out, one entry per line.
func (a *App) printMetadata(cfg *Config) error {
	items, err := metadata.Assemble(a.registry.MetadataItems(), nil)
	if err != nil {
		return fmt.Errorf("failed to assemble metadata: %w", err)
	}

	if cfg.Artist != "" {
		fmt.Fprintf(a.outW, "Artist = %s\n", cfg.Artist)
	}
	for _, item := range items {
		value := item.Value
		if item.IsExpression() {
			// Channel expressions are applied on the embedded metadata node,
			// one level below where they were authored.
			value = metadata.RewriteExpression(value)
		}
		fmt.Fprintf(a.outW, "%s (%s) = %s\n", item.Key, item.Type, value)
	}
	return nil
}

// printNodeReport loads a render node's parameter snapshot and writes out
// the output range and every output file the render will produce, with the
// AOVs each one carries.
func (a *App) printNodeReport(ctx context.Context, path string) error {
	ev, err := a.nodes.LoadNode(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load node parameters: %w", err)
	}

	if err := aov.ValidateRenderName(ev.String("name")); err != nil {
		return err
	}

	rng := frames.Output(ev.Bool("trange"), ev.Int("f1"), ev.Int("f2"), ev.Int("frame"))
	fmt.Fprintf(a.outW, "Render %s covers frames %s.\n", ev.String("name"), rng)

	isLOP := ev.Bool("lop")
	products, files := aov.ActiveFiles(ev)
	fmt.Fprintf(a.outW, "%d image products across %d output files.\n", products, len(files))

	for _, file := range files {
		fmt.Fprintf(a.outW, "%s (%s, %s):\n", file.Identifier, file.Bitdepth, file.Compression)
		for _, name := range file.ActiveAOVs(ev) {
			fmt.Fprintf(a.outW, "  %s\n", name)
		}
		custom, err := file.ActiveCustomAOVs(ev, isLOP)
		if err != nil {
			return err
		}
		for _, c := range custom {
			fmt.Fprintf(a.outW, "  %s (%s)\n", c.Name, c.Format())
		}
	}
	return nil
}
