package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/composergo/internal/ctxlog"
	"github.com/vk/composergo/internal/manifest"
	"github.com/vk/composergo/internal/widget"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *widget.Registry
	model    *manifest.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Critical configuration errors panic; the entrypoint recovers them into a
// clean exit message.
func NewApp(outW io.Writer, appConfig *Config, loader *manifest.Loader, modules ...widget.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with the built-in widget builders.
	reg := widget.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All widget modules registered.", "count", len(modules), "builders", reg.DefinedNames())

	// Load all scene manifests into the format-agnostic model.
	model, err := loader.Load(ctx, appConfig.ScenesPath)
	if err != nil {
		// A failure to load scene manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load scene manifests: %w", err))
	}

	// Validate the model against the registry before any rendering starts.
	if err := validateScenes(model, reg); err != nil {
		panic(err)
	}
	logger.Debug("Scene validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *widget.Registry {
	return a.registry
}

// validateScenes performs a strict parity check between the loaded scene
// manifests and the registered builders.
func validateScenes(model *manifest.Model, reg *widget.Registry) error {
	var errs []string
	for _, scene := range model.Scenes {
		if scene.Root == "" {
			errs = append(errs, fmt.Sprintf("scene '%s': root builder name is empty", scene.Name))
			continue
		}
		if !reg.IsDefined(scene.Root) {
			errs = append(errs, fmt.Sprintf("scene '%s': root builder '%s' is not registered", scene.Name, scene.Root))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scene validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
