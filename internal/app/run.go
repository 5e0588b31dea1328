package app

import (
	"context"
	"fmt"

	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/ctxlog"
	"github.com/vk/composergo/internal/manifest"
)

// Run renders the configured scenes to the application's output writer. Each
// scene gets a fresh context node seeded from its manifest values, published
// as the ambient context for the recall of its root builder.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scenes := a.model.Scenes
	if a.config.SceneName != "" {
		scene, ok := a.model.Scene(a.config.SceneName)
		if !ok {
			return fmt.Errorf("scene %q is not defined in %s", a.config.SceneName, a.config.ScenesPath)
		}
		scenes = []*manifest.Scene{scene}
	}

	if len(scenes) == 0 {
		a.logger.Warn("No scenes found, nothing to render.")
		return nil
	}

	for _, scene := range scenes {
		node := scene.NewContext()
		sceneCtx := composer.WithAmbient(ctx, node)

		w, err := a.registry.Recall(sceneCtx, scene.Root, nil)
		if err != nil {
			return fmt.Errorf("rendering scene %q: %w", scene.Name, err)
		}

		fmt.Fprintln(a.outW, w.Render())
		a.logger.Debug("Scene rendered.", "scene", scene.Name, "root", scene.Root)
	}

	a.logger.Debug("App.Run method finished.", "scenes_rendered", len(scenes))
	return nil
}
