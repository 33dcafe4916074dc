package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/renderpipe/renderconf/internal/aov"
	"github.com/renderpipe/renderconf/internal/ctxlog"
	"github.com/renderpipe/renderconf/internal/registry"
	"github.com/renderpipe/renderconf/internal/schema"
	"github.com/renderpipe/renderconf/internal/settings"
)

// NodeLoader reads a render node's parameter snapshot for reporting. The
// HCL adapter provides the concrete implementation.
type NodeLoader interface {
	LoadNode(ctx context.Context, path string) (aov.Evaluator, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	nodes    NodeLoader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance whose settings have already passed validation
// against the declared schema. Startup failures panic; the entrypoint
// recovers them into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader settings.Loader, nodes NodeLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	manifest := schema.Default()
	if err := manifest.Validate(); err != nil {
		// The declaration ships with the binary, so this is a programmer error.
		panic(err)
	}
	logger.Debug("Schema declaration validated.", "options", len(manifest.Options))

	model, err := loader.Load(ctx, cfg.SettingsPath)
	if err != nil {
		panic(fmt.Errorf("failed to load settings: %w", err))
	}
	logger.Debug("Settings loaded and translated into unified model.")

	reg := registry.New(manifest)
	reg.PopulateFromModel(model)
	logger.Debug("Registry populated from settings model.")

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		nodes:    nodes,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
